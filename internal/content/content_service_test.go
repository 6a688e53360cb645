package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writePage(t *testing.T, dir, slug, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestContentService(t *testing.T) {
	Convey("Given a content directory", t, func() {
		dir := t.TempDir()
		writePage(t, dir, "about", "# About Us\n\nWe train players.")
		writePage(t, dir, "summer-camps", "No heading here, just text.")
		service := NewService(dir)

		Convey("A page renders to HTML with its heading as title", func() {
			page, err := service.GetPage("about")
			So(err, ShouldBeNil)
			So(page.Slug, ShouldEqual, "about")
			So(page.Title, ShouldEqual, "About Us")
			So(page.HTML, ShouldContainSubstring, "<h1")
			So(page.HTML, ShouldContainSubstring, "We train players.")
		})

		Convey("A page without a heading titles itself from the slug", func() {
			page, err := service.GetPage("summer-camps")
			So(err, ShouldBeNil)
			So(page.Title, ShouldEqual, "Summer Camps")
		})

		Convey("GFM tables render as HTML tables", func() {
			writePage(t, dir, "programs", "# Programs\n\n| A | B |\n| --- | --- |\n| 1 | 2 |\n")
			page, err := service.GetPage("programs")
			So(err, ShouldBeNil)
			So(page.HTML, ShouldContainSubstring, "<table>")
		})

		Convey("Unknown pages return not-exist", func() {
			_, err := service.GetPage("missing")
			So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
		})

		Convey("Traversal-shaped slugs are rejected as not-exist", func() {
			_, err := service.GetPage("../etc/passwd")
			So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)

			_, err = service.GetPage("About")
			So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
		})

		Convey("Rendered pages are cached until invalidated", func() {
			first, err := service.GetPage("about")
			So(err, ShouldBeNil)

			writePage(t, dir, "about", "# Changed\n")
			cached, err := service.GetPage("about")
			So(err, ShouldBeNil)
			So(cached.Title, ShouldEqual, first.Title)

			service.Invalidate()
			fresh, err := service.GetPage("about")
			So(err, ShouldBeNil)
			So(fresh.Title, ShouldEqual, "Changed")
		})

		Convey("ListPages returns every markdown slug", func() {
			slugs, err := service.ListPages()
			So(err, ShouldBeNil)
			So(slugs, ShouldContain, "about")
			So(slugs, ShouldContain, "summer-camps")
		})
	})
}
