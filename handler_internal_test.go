package ftracker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	a := assert.New(t)
	engine := NewEngine("")

	post := func(path, body string) int {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec.Code
	}

	swimming := workoutsCounter.WithLabelValues("Swimming")
	running := workoutsCounter.WithLabelValues("Running")
	unknown := rejectedCounter.WithLabelValues("unknown_type")
	arity := rejectedCounter.WithLabelValues("arity")
	invalid := rejectedCounter.WithLabelValues("invalid_reading")

	swm := testutil.ToFloat64(swimming)
	run := testutil.ToFloat64(running)
	unk := testutil.ToFloat64(unknown)
	ari := testutil.ToFloat64(arity)
	inv := testutil.ToFloat64(invalid)

	a.Equal(http.StatusOK, post("/summary", `{"type": "SWM", "data": [720, 1, 80, 25, 40]}`))
	a.Equal(http.StatusOK, post("/summaries", `{"packages": [{"type": "SWM", "data": [720, 1, 80, 25, 40]}, {"type": "RUN", "data": [15000, 1, 75]}]}`))
	a.Equal(http.StatusBadRequest, post("/summary", `{"type": "XXX", "data": [1, 2, 3]}`))
	a.Equal(http.StatusBadRequest, post("/summary", `{"type": "RUN", "data": [1, 2]}`))
	a.Equal(http.StatusBadRequest, post("/summary", `{"type": "RUN", "data": [15000, 0, 75]}`))
	a.Equal(http.StatusBadRequest, post("/summaries", `{"packages": [{"type": "RUN", "data": [15000, 1, 75]}, {"type": "WLK", "data": [9000, 1, 75, 0]}]}`))

	a.Equal(swm+2, testutil.ToFloat64(swimming))
	a.Equal(run+1, testutil.ToFloat64(running))
	a.Equal(unk+1, testutil.ToFloat64(unknown))
	a.Equal(ari+1, testutil.ToFloat64(arity))
	a.Equal(inv+2, testutil.ToFloat64(invalid))
}

func TestLambdaHandler(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	handler := LambdaHandler(echoadapter.New(NewEngine("")))

	res, err := handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/kinds",
	})
	require.NoError(t, err)
	a.Equal(http.StatusOK, res.StatusCode)
	a.Contains(res.Body, `"code":"RUN"`)

	res, err = handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/summary",
		Headers:    map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON},
		Body:       `{"type": "RUN", "data": [15000, 1, 75]}`,
	})
	require.NoError(t, err)
	a.Equal(http.StatusOK, res.StatusCode)
	a.Contains(res.Body, "Calories burned: 699.750.")

	res, err = handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/summary",
		Headers:    map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON},
		Body:       `{"type": "RUN", "data": [15000, 0, 75]}`,
	})
	require.NoError(t, err)
	a.Equal(http.StatusBadRequest, res.StatusCode)
	a.Contains(res.Body, "invalid reading for RUN: duration = 0")
}
