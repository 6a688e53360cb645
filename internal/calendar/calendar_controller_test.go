package calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/nextstarsoccer/nss-backend/config"
)

func newCalendarRouter(proxyURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	client := NewProxyClient(proxyURL, "")
	classifier := NewTypeClassifier(DefaultTypeRules())
	service := NewService(client, classifier)
	controller := NewCalendarController(service, classifier, &config.Config{})

	r.GET("/calendar/today", controller.GetToday)
	r.GET("/calendar/:year/:month", controller.GetMonth)
	return r
}

func TestGetMonth(t *testing.T) {
	Convey("Given the calendar endpoints", t, func() {
		proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":[
				{"id":"e1","summary":"Evening Group Training","description":"Session Cancelled",
				 "start":{"dateTime":"2026-09-10T18:00:00Z"},"end":{"dateTime":"2026-09-10T19:30:00Z"}}
			]}`))
		}))
		defer proxy.Close()
		router := newCalendarRouter(proxy.URL)

		Convey("A month request returns a decorated grid", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/calendar/2026/9", nil)
			router.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)

			var body struct {
				Data monthResponse `json:"data"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body.Data.Year, ShouldEqual, 2026)
			So(body.Data.Month, ShouldEqual, 9)
			So(len(body.Data.Grid), ShouldEqual, 32)
			So(len(body.Data.Events), ShouldEqual, 1)
			So(body.Data.Events[0].Category, ShouldEqual, "evening-training")
			So(body.Data.Events[0].Color, ShouldEqual, "#E50101")
			So(body.Data.Events[0].Cancelled, ShouldBeTrue)
		})

		Convey("Filter params deselect categories", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/calendar/2026/9?filters=clinic", nil)
			router.ServeHTTP(w, req)

			var body struct {
				Data monthResponse `json:"data"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(len(body.Data.Events), ShouldEqual, 0)
		})

		Convey("Invalid years and months are rejected", func() {
			for _, path := range []string{"/calendar/abc/9", "/calendar/1500/9", "/calendar/2026/13", "/calendar/2026/0"} {
				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, path, nil)
				router.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			}
		})
	})
}

func TestGetMonthProxyFailure(t *testing.T) {
	Convey("Given a dead calendar source", t, func() {
		proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer proxy.Close()
		router := newCalendarRouter(proxy.URL)

		Convey("The month endpoint still returns 200 with an empty grid", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/calendar/2026/9", nil)
			router.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)

			var body struct {
				Data monthResponse `json:"data"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(len(body.Data.Events), ShouldEqual, 0)
			So(len(body.Data.Grid), ShouldEqual, 32)
		})

		Convey("The today endpoint still returns 200 with an empty list", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/calendar/today", nil)
			router.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)

			var body struct {
				Data []eventView `json:"data"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(len(body.Data), ShouldEqual, 0)
		})
	})
}
