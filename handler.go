package ftracker

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	workoutsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "tracker",
		Name:      "workouts_total",
		Help:      "Number of workouts summarized, by type.",
	}, []string{"type"})
	rejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "tracker",
		Name:      "rejected_total",
		Help:      "Number of sensor packages rejected, by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(workoutsCounter, rejectedCounter)
}

// SummaryRequest is a single sensor package
type SummaryRequest = Package

// SummaryResponse carries the summary and its rendered message
type SummaryResponse struct {
	*Summary
	Message string `json:"message"`
}

// SummariesRequest is a batch of sensor packages
type SummariesRequest = Config

// SummariesResponse carries the summaries of a batch and their totals
type SummariesResponse struct {
	Summaries []*SummaryResponse `json:"summaries"`
	Totals    []*Total           `json:"totals"`
}

// KindResponse describes a registered kind
type KindResponse struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Arity  int      `json:"arity"`
	Fields []string `json:"fields"`
}

func record(err error) error {
	switch {
	case errors.Is(err, ErrUnknownKind):
		rejectedCounter.WithLabelValues("unknown_type").Inc()
	case errors.Is(err, ErrArityMismatch):
		rejectedCounter.WithLabelValues("arity").Inc()
	case errors.Is(err, ErrInvalidReading):
		rejectedCounter.WithLabelValues("invalid_reading").Inc()
	default:
		return err
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func respond(sum *Summary) *SummaryResponse {
	workoutsCounter.WithLabelValues(sum.Type).Inc()
	return &SummaryResponse{Summary: sum, Message: sum.Message()}
}

// SummaryHandler summarizes a single sensor package
func SummaryHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SummaryRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		w, err := req.Workout()
		if err != nil {
			return record(err)
		}
		return c.JSON(http.StatusOK, respond(w.Summary()))
	}
}

// SummariesHandler summarizes a batch of sensor packages and totals them by type
func SummariesHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SummariesRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		sums, err := Process(req.Packages)
		if err != nil {
			return record(err)
		}
		res := &SummariesResponse{
			Summaries: make([]*SummaryResponse, 0, len(sums)),
			Totals:    Tally(sums),
		}
		for _, sum := range sums {
			res.Summaries = append(res.Summaries, respond(sum))
		}
		return c.JSON(http.StatusOK, res)
	}
}

// KindsHandler lists the registered kinds
func KindsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var res []*KindResponse
		for _, k := range Kinds() {
			res = append(res, &KindResponse{Code: string(k), Name: k.Name(), Arity: k.Arity(), Fields: k.Fields()})
		}
		return c.JSON(http.StatusOK, res)
	}
}

func logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		req := c.Request()
		log.Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", c.Response().Status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return nil
	}
}

// NewEngine returns an echo instance with all routes mounted under base
func NewEngine(base string) *echo.Echo {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Use(middleware.Recover())
	engine.Use(logger)

	grp := engine.Group(base)
	grp.GET("/kinds", KindsHandler())
	grp.POST("/summary", SummaryHandler())
	grp.POST("/summaries", SummariesHandler())

	return engine
}

// LambdaHandler proxies API Gateway events to the echo engine
func LambdaHandler(e *echoadapter.EchoLambda) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(_ context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return e.Proxy(req)
	}
}
