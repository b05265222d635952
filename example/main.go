// Command example serves job statuses decoded from their wire integers.
//
//	curl localhost:8080/statuses/2
//	{"status":"doing"}
package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

//go:generate go tool enumn gen .

//enumn:derive
type JobStatus uint8

const (
	JobStatusTodo JobStatus = iota + 1
	JobStatusDoing
	JobStatusDone
)

func (s JobStatus) String() string {
	switch s {
	case JobStatusTodo:
		return "todo"
	case JobStatusDoing:
		return "doing"
	case JobStatusDone:
		return "done"
	}
	return "JobStatus(" + strconv.Itoa(int(s)) + ")"
}

//enumn:derive repr=i32
type Event interface{ isEvent() }

type Started struct{}

//enumn:value 10
type Finished struct{}

func (Started) isEvent()  {}
func (Finished) isEvent() {}

func getStatus(c echo.Context) error {
	code, err := strconv.ParseUint(c.Param("code"), 10, 8)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "status code must be in [0, 255]")
	}

	status, ok := JobStatusN(uint8(code))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown status")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": status.String()})
}

func getEvent(c echo.Context) error {
	code, err := strconv.ParseInt(c.Param("code"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "event code must be an int32")
	}

	switch event, _ := EventN(int32(code)); event.(type) {
	case Started:
		return c.JSON(http.StatusOK, map[string]string{"event": "started"})
	case Finished:
		return c.JSON(http.StatusOK, map[string]string{"event": "finished"})
	}
	return echo.NewHTTPError(http.StatusNotFound, "unknown event")
}

func main() {
	e := echo.New()
	e.GET("/statuses/:code", getStatus)
	e.GET("/events/:code", getEvent)
	e.Logger.Fatal(e.Start(":8080"))
}
