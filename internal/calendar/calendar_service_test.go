package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestServiceEventsForMonth(t *testing.T) {
	Convey("Given a service over a counting proxy", t, func() {
		ctx := context.Background()
		var calls int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
			w.Write([]byte(`{"success":true,"data":[{"id":"e1","summary":"Clinic","start":{"dateTime":"2026-09-03T10:00:00Z"},"end":{"dateTime":"2026-09-03T11:00:00Z"}}]}`))
		}))
		defer server.Close()

		service := NewService(NewProxyClient(server.URL, ""), NewTypeClassifier(DefaultTypeRules()))

		Convey("Repeating a month serves the retained result", func() {
			first := service.EventsForMonth(ctx, 2026, time.September, "main")
			second := service.EventsForMonth(ctx, 2026, time.September, "main")

			So(len(first), ShouldEqual, 1)
			So(second, ShouldResemble, first)
			So(atomic.LoadInt64(&calls), ShouldEqual, 1)
		})

		Convey("Changing the month or calendar refetches", func() {
			service.EventsForMonth(ctx, 2026, time.September, "main")
			service.EventsForMonth(ctx, 2026, time.October, "main")
			service.EventsForMonth(ctx, 2026, time.October, "camps")
			So(atomic.LoadInt64(&calls), ShouldEqual, 3)
		})

		Convey("A slow fetch does not overwrite the month that finished after it", func() {
			started := make(chan struct{})
			gate := make(chan struct{})
			var once sync.Once
			slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var req proxyRequest
				_ = json.NewDecoder(r.Body).Decode(&req)
				atomic.AddInt64(&calls, 1)
				if req.Month == 8 {
					once.Do(func() { close(started) })
					<-gate
				}
				w.Write([]byte(`{"success":true,"data":[{"id":"m` + strconv.Itoa(req.Month) + `","summary":"Clinic","start":{"dateTime":"2026-01-01T10:00:00Z"},"end":{"dateTime":"2026-01-01T11:00:00Z"}}]}`))
			}))
			defer slow.Close()
			service := NewService(NewProxyClient(slow.URL, ""), NewTypeClassifier(DefaultTypeRules()))

			septDone := make(chan []Event)
			go func() {
				septDone <- service.EventsForMonth(ctx, 2026, time.September, "main")
			}()
			<-started

			october := service.EventsForMonth(ctx, 2026, time.October, "main")
			close(gate)
			september := <-septDone

			So(september[0].ID, ShouldEqual, "m8")
			So(october[0].ID, ShouldEqual, "m9")

			// October landed last, so a repeat is served without a fetch.
			before := atomic.LoadInt64(&calls)
			again := service.EventsForMonth(ctx, 2026, time.October, "main")
			So(again[0].ID, ShouldEqual, "m9")
			So(atomic.LoadInt64(&calls), ShouldEqual, before)
		})
	})
}

func TestServiceFailureHandling(t *testing.T) {
	Convey("Given a proxy that fails and then recovers", t, func() {
		ctx := context.Background()
		var calls int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt64(&calls, 1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{"success":true,"data":[{"id":"e1","summary":"Clinic","start":{"dateTime":"2026-09-03T10:00:00Z"},"end":{"dateTime":"2026-09-03T11:00:00Z"}}]}`))
		}))
		defer server.Close()

		service := NewService(NewProxyClient(server.URL, ""), NewTypeClassifier(DefaultTypeRules()))

		Convey("The failed month is not retained, so the next request recovers", func() {
			first := service.EventsForMonth(ctx, 2026, time.September, "main")
			So(first, ShouldBeEmpty)

			second := service.EventsForMonth(ctx, 2026, time.September, "main")
			So(len(second), ShouldEqual, 1)
			So(second[0].ID, ShouldEqual, "e1")
			So(atomic.LoadInt64(&calls), ShouldEqual, 2)
		})
	})

	Convey("Given a retained month older than the cache window", t, func() {
		ctx := context.Background()
		var calls int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
			w.Write([]byte(`{"success":true,"data":[{"id":"e1","summary":"Clinic","start":{"dateTime":"2026-09-03T10:00:00Z"},"end":{"dateTime":"2026-09-03T11:00:00Z"}}]}`))
		}))
		defer server.Close()

		service := NewService(NewProxyClient(server.URL, ""), NewTypeClassifier(DefaultTypeRules()))
		clock := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return clock }

		Convey("A repeat within the window is served from the cache", func() {
			service.EventsForMonth(ctx, 2026, time.September, "main")
			clock = clock.Add(time.Minute)
			service.EventsForMonth(ctx, 2026, time.September, "main")
			So(atomic.LoadInt64(&calls), ShouldEqual, 1)
		})

		Convey("A repeat after the window refetches", func() {
			service.EventsForMonth(ctx, 2026, time.September, "main")
			clock = clock.Add(calendarCacheTTL + time.Second)
			service.EventsForMonth(ctx, 2026, time.September, "main")
			So(atomic.LoadInt64(&calls), ShouldEqual, 2)
		})
	})
}

func TestServiceTodaysEvents(t *testing.T) {
	Convey("Given a service with a fixed clock", t, func() {
		ctx := context.Background()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":[
				{"id":"today","summary":"Morning Group Training","start":{"dateTime":"2026-09-10T07:00:00Z"},"end":{"dateTime":"2026-09-10T08:30:00Z"}},
				{"id":"tomorrow","summary":"Clinic","start":{"dateTime":"2026-09-11T10:00:00Z"},"end":{"dateTime":"2026-09-11T11:00:00Z"}}
			]}`))
		}))
		defer server.Close()

		service := NewService(NewProxyClient(server.URL, ""), NewTypeClassifier(DefaultTypeRules()))
		service.now = func() time.Time { return time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC) }

		Convey("Only events starting today come back", func() {
			events := service.TodaysEvents(ctx, "main")
			So(len(events), ShouldEqual, 1)
			So(events[0].ID, ShouldEqual, "today")
		})

		Convey("The month grid overrides the today cell with those events", func() {
			grid, filtered := service.MonthGrid(ctx, 2026, time.September, DefaultFilterOptions(), "main")

			So(len(filtered), ShouldEqual, 2)

			// September 2026 has two leading cells; day 10 is at index 11.
			day10 := grid[2+9]
			So(day10.Today, ShouldBeTrue)
			So(len(day10.Events), ShouldEqual, 1)
			So(day10.Events[0].ID, ShouldEqual, "today")
		})

		Convey("A month that does not contain today has no today cell", func() {
			grid, _ := service.MonthGrid(ctx, 2026, time.October, DefaultFilterOptions(), "main")
			for _, cell := range grid {
				So(cell.Today, ShouldBeFalse)
			}
		})
	})
}
