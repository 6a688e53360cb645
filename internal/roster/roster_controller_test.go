package roster

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/nextstarsoccer/nss-backend/config"
)

func newRosterRouter(sheetsServer *httptest.Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	client := newTestSheetsClient(sheetsServer)
	controller := NewRosterController(client, NewClassifier(DefaultClassifierConfig()), &config.Config{})

	r.GET("/alumni", controller.GetAlumni)
	r.GET("/alumni/filters", controller.GetFilterTree)
	return r
}

func rosterSheetHandler(calls *int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(calls, 1)
		w.Write([]byte(`{"values":[
			["name","subtitle"],
			["Ana Alvarez","Yale University"],
			["Diego Santos","AFC Bournemouth"]
		]}`))
	}
}

func TestGetAlumni(t *testing.T) {
	Convey("Given the alumni endpoint", t, func() {
		var calls int64
		server := httptest.NewServer(rosterSheetHandler(&calls))
		defer server.Close()
		router := newRosterRouter(server)

		Convey("A plain request returns the full roster with sort options", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/alumni", nil)
			router.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)

			var body struct {
				Data alumniResponse `json:"data"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body.Data.Total, ShouldEqual, 2)
			So(body.Data.SortOptions, ShouldResemble, SortOptions)
		})

		Convey("Repeat requests are served from the cache", func() {
			for i := 0; i < 3; i++ {
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/alumni", nil))
				So(w.Code, ShouldEqual, http.StatusOK)
			}
			So(atomic.LoadInt64(&calls), ShouldEqual, 1)
		})

		Convey("refresh=true forces a refetch", func() {
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/alumni", nil))
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/alumni?refresh=true", nil))
			So(atomic.LoadInt64(&calls), ShouldEqual, 2)
		})

		Convey("The filters param restricts the result", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/alumni?filters=Europe", nil)
			router.ServeHTTP(w, req)

			var body struct {
				Data alumniResponse `json:"data"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body.Data.Total, ShouldEqual, 1)
			So(body.Data.Entries[0].Name, ShouldEqual, "Diego Santos")
		})

		Convey("Search narrows by name or affiliation", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/alumni?search=yale", nil)
			router.ServeHTTP(w, req)

			var body struct {
				Data alumniResponse `json:"data"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body.Data.Total, ShouldEqual, 1)
			So(body.Data.Entries[0].Name, ShouldEqual, "Ana Alvarez")
		})
	})
}

func TestGetAlumniSourceFailure(t *testing.T) {
	Convey("Given a failing roster source", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":{"message":"backend down"}}`))
		}))
		defer server.Close()
		router := newRosterRouter(server)

		Convey("The endpoint answers 502 so the client can retry", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/alumni", nil))
			So(w.Code, ShouldEqual, http.StatusBadGateway)
		})
	})
}

func TestGetFilterTree(t *testing.T) {
	Convey("Given the filter tree endpoint", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()
		router := newRosterRouter(server)

		Convey("It returns the fixed categories and sort options", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/alumni/filters", nil))

			So(w.Code, ShouldEqual, http.StatusOK)

			var body struct {
				Data struct {
					Categories  map[string][]string `json:"categories"`
					SortOptions []string            `json:"sort_options"`
				} `json:"data"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body.Data.Categories[CategoryCollegiate], ShouldResemble, []string{"D1", "D2", "D3"})
			So(body.Data.Categories[CategoryProfessional], ShouldResemble, []string{"North America", "Europe", "Oceania"})
			So(body.Data.SortOptions, ShouldResemble, SortOptions)
		})
	})
}
