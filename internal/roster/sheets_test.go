package roster

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func newTestSheetsClient(server *httptest.Server) *SheetsClient {
	client := NewSheetsClient("sheet-id", "api-key", "Players!A1:Q150")
	client.baseURL = server.URL
	client.httpClient = server.Client()
	return client
}

func TestFetchEntries(t *testing.T) {
	Convey("Given a sheets endpoint", t, func() {
		Convey("When the sheet has a header row and player rows", func() {
			var renderOption string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				renderOption = r.URL.Query().Get("valueRenderOption")
				w.Write([]byte(`{"values":[
					["name","subtitle","image"],
					["Ana Alvarez","Yale University","=IMAGE(\"https://drive.google.com/file/d/ID1/view\")"],
					["","",""],
					["Diego Santos","AFC Bournemouth","https://example.com/diego.png"]
				]}`))
			}))
			defer server.Close()

			entries, err := newTestSheetsClient(server).FetchEntries(context.Background())

			Convey("Then blank rows are dropped and assets normalized", func() {
				So(err, ShouldBeNil)
				So(renderOption, ShouldEqual, "FORMULA")
				So(len(entries), ShouldEqual, 2)
				So(entries[0].Name, ShouldEqual, "Ana Alvarez")
				So(entries[0].Image, ShouldEqual, "https://drive.google.com/thumbnail?id=ID1&sz=w400")
				So(entries[1].Image, ShouldEqual, "https://example.com/diego.png")
			})
		})

		Convey("When a row is shorter than the header", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"values":[["name","subtitle"],["Finn"]]}`))
			}))
			defer server.Close()

			entries, err := newTestSheetsClient(server).FetchEntries(context.Background())

			So(err, ShouldBeNil)
			So(len(entries), ShouldEqual, 1)
			So(entries[0].Name, ShouldEqual, "Finn")
			So(entries[0].Subtitle, ShouldEqual, "")
		})

		Convey("When a cell holds a number it is stringified", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"values":[["name","hometown"],["Ana",42]]}`))
			}))
			defer server.Close()

			entries, err := newTestSheetsClient(server).FetchEntries(context.Background())

			So(err, ShouldBeNil)
			So(entries[0].Hometown, ShouldEqual, "42")
		})

		Convey("When the sheet is empty", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"values":[]}`))
			}))
			defer server.Close()

			_, err := newTestSheetsClient(server).FetchEntries(context.Background())
			So(errors.Is(err, ErrNoData), ShouldBeTrue)
		})

		Convey("When only the header row has content", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"values":[["name","subtitle"],["",""]]}`))
			}))
			defer server.Close()

			_, err := newTestSheetsClient(server).FetchEntries(context.Background())
			So(errors.Is(err, ErrNoData), ShouldBeTrue)
		})

		Convey("When the API reports an error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":{"message":"API key invalid"}}`))
			}))
			defer server.Close()

			_, err := newTestSheetsClient(server).FetchEntries(context.Background())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "API key invalid")
		})

		Convey("When the endpoint is unreachable", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			server.Close()

			_, err := newTestSheetsClient(server).FetchEntries(context.Background())
			So(err, ShouldNotBeNil)
		})
	})
}
