package utils

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPasswordHashing(t *testing.T) {
	Convey("Given a password", t, func() {
		password := "correct horse battery staple"

		hash, err := HashPassword(password)
		So(err, ShouldBeNil)
		So(hash, ShouldNotEqual, password)

		Convey("The right password verifies", func() {
			So(CheckPassword(hash, password), ShouldBeTrue)
		})

		Convey("A wrong password does not", func() {
			So(CheckPassword(hash, "wrong"), ShouldBeFalse)
		})

		Convey("A corrupt hash does not verify anything", func() {
			So(CheckPassword("not-a-hash", password), ShouldBeFalse)
		})
	})
}

func TestGenerateRandomToken(t *testing.T) {
	Convey("Given the random token generator", t, func() {
		Convey("Tokens have the requested length and are unique", func() {
			a := GenerateRandomToken(32)
			b := GenerateRandomToken(32)
			So(len(a), ShouldEqual, 32)
			So(len(b), ShouldEqual, 32)
			So(a, ShouldNotEqual, b)
		})
	})
}
