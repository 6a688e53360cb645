package roster

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func sampleEntries() []Entry {
	return []Entry{
		{Name: "Ana Alvarez", Subtitle: "Yale University"},
		{Name: "Bram Zimmer", Subtitle: "Emory University"},
		{Name: "Carla Moore", Subtitle: "Adelphi University"},
		{Name: "Diego Santos", Subtitle: "AFC Bournemouth"},
		{Name: "Emma Park", Subtitle: "Manurewa AFC"},
		{Name: "Finn", Subtitle: "New York Red Bulls II"},
	}
}

func TestQuery(t *testing.T) {
	Convey("Given a roster and the default classifier", t, func() {
		c := NewClassifier(DefaultClassifierConfig())
		entries := sampleEntries()

		Convey("With no search and all filters selected everything comes back", func() {
			got := Query(entries, "", NewFilterState(), SortLastNameAZ, c)
			So(len(got), ShouldEqual, 6)
		})

		Convey("Search matches names and affiliations case-insensitively", func() {
			byName := Query(entries, "ANA", NewFilterState(), SortLastNameAZ, c)
			So(len(byName), ShouldEqual, 1)
			So(byName[0].Name, ShouldEqual, "Ana Alvarez")

			bySub := Query(entries, "bournemouth", NewFilterState(), SortLastNameAZ, c)
			So(len(bySub), ShouldEqual, 1)
			So(bySub[0].Name, ShouldEqual, "Diego Santos")
		})

		Convey("Deselecting a tier hides collegiate entries in that tier only", func() {
			fs := NewFilterState()
			fs.ToggleSub("D1", CategoryCollegiate)
			got := Query(entries, "", fs, SortLastNameAZ, c)

			names := make([]string, 0, len(got))
			for _, e := range got {
				names = append(names, e.Name)
			}
			So(names, ShouldNotContain, "Ana Alvarez")
			So(names, ShouldContain, "Bram Zimmer")
			So(names, ShouldContain, "Diego Santos")
		})

		Convey("Deselecting a region hides professional entries in that region", func() {
			fs := NewFilterState()
			fs.ToggleSub("Europe", CategoryProfessional)
			got := Query(entries, "", fs, SortLastNameAZ, c)

			for _, e := range got {
				So(e.Name, ShouldNotEqual, "Diego Santos")
			}
			So(len(got), ShouldEqual, 5)
		})

		Convey("Last name sort orders by the final name token", func() {
			got := Query(entries, "", NewFilterState(), SortLastNameAZ, c)
			So(got[0].Name, ShouldEqual, "Ana Alvarez")
			So(got[len(got)-1].Name, ShouldEqual, "Bram Zimmer")
		})

		Convey("A single-token name sorts by that token in both orders", func() {
			first := Query(entries, "", NewFilterState(), SortFirstNameAZ, c)
			last := Query(entries, "", NewFilterState(), SortLastNameAZ, c)

			posIn := func(list []Entry, name string) int {
				for i, e := range list {
					if e.Name == name {
						return i
					}
				}
				return -1
			}
			So(posIn(first, "Finn"), ShouldBeGreaterThanOrEqualTo, 0)
			So(posIn(last, "Finn"), ShouldBeGreaterThanOrEqualTo, 0)
		})

		Convey("Sorting is stable for equal keys", func() {
			dup := []Entry{
				{Name: "Zoe Smith", Subtitle: "Yale University"},
				{Name: "Amy Smith", Subtitle: "Adelphi University"},
			}
			got := Query(dup, "", NewFilterState(), SortLastNameAZ, c)
			So(got[0].Name, ShouldEqual, "Zoe Smith")
			So(got[1].Name, ShouldEqual, "Amy Smith")
		})

		Convey("Querying twice with the same inputs yields the same sequence", func() {
			fs := NewFilterState()
			a := Query(entries, "a", fs, SortFirstNameZA, c)
			b := Query(entries, "a", fs, SortFirstNameZA, c)
			So(a, ShouldResemble, b)
		})

		Convey("An unknown sort order leaves the filtered order untouched", func() {
			got := Query(entries, "", NewFilterState(), "bogus", c)
			So(got[0].Name, ShouldEqual, "Ana Alvarez")
			So(got[5].Name, ShouldEqual, "Finn")
		})
	})
}

func TestFilterState(t *testing.T) {
	Convey("Given a fresh filter state", t, func() {
		fs := NewFilterState()

		Convey("Everything starts selected", func() {
			for key := range fs {
				So(fs[key], ShouldBeTrue)
			}
		})

		Convey("Toggling a category cascades to its children", func() {
			fs.ToggleCategory(CategoryCollegiate)
			So(fs[CategoryCollegiate], ShouldBeFalse)
			So(fs["D1"], ShouldBeFalse)
			So(fs["D2"], ShouldBeFalse)
			So(fs["D3"], ShouldBeFalse)
			So(fs["Europe"], ShouldBeTrue)
		})

		Convey("Toggling a half-checked category selects everything", func() {
			fs.ToggleSub("D1", CategoryCollegiate)
			fs.ToggleCategory(CategoryCollegiate)
			So(fs[CategoryCollegiate], ShouldBeTrue)
			So(fs["D1"], ShouldBeTrue)
			So(fs["D2"], ShouldBeTrue)
			So(fs["D3"], ShouldBeTrue)
		})

		Convey("Deselecting a child clears the parent; reselecting restores it", func() {
			fs.ToggleSub("D2", CategoryCollegiate)
			So(fs[CategoryCollegiate], ShouldBeFalse)

			fs.ToggleSub("D2", CategoryCollegiate)
			So(fs[CategoryCollegiate], ShouldBeTrue)
		})

		Convey("Unknown keys are ignored", func() {
			before := fs.Clone()
			fs.ToggleCategory("nope")
			fs.ToggleSub("D1", "nope")
			So(fs, ShouldResemble, before)
		})

		Convey("Clone is independent of the original", func() {
			clone := fs.Clone()
			clone.ToggleCategory(CategoryProfessional)
			So(fs[CategoryProfessional], ShouldBeTrue)
			So(clone[CategoryProfessional], ShouldBeFalse)
		})
	})
}
