package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"

	pt "github.com/penpaperdiary/penpaper-api/internal/penpapertest"
)

type postgresContainer struct {
	Ctx       context.Context
	Container postgres.PostgresContainer
	URI       string
}

type StdoutLogConsumer struct{}

func (lc *StdoutLogConsumer) Accept(l tc.Log) {
	if l.LogType == "STDERR" {
		_, err := fmt.Fprintln(os.Stdout, string(l.Content))
		if err != nil {
			fmt.Println("Error writing to stdout:", err)
			return
		}
	}
}

func SetupPostgres(t testing.TB) *postgresContainer {
	t.Helper()
	ctx := context.Background()

	// Ensure migration files exist
	_, err := filepath.Glob("../../sql/schema/*.sql")
	require.NoError(t, err)

	g := StdoutLogConsumer{}

	pgc, err := postgres.Run(
		ctx,
		"postgres:18.1-alpine",
		postgres.WithDatabase("penpaper"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		tc.WithLogConsumerConfig(&tc.LogConsumerConfig{
			Consumers: []tc.LogConsumer{&g},
		}),
		postgres.BasicWaitStrategies(),
		tc.WithReuseByName("penpaperdb-integration-tests"),
	)
	defer tc.CleanupContainer(t, pgc)
	require.NoError(t, err)

	err = pgc.Snapshot(ctx)
	require.NoError(t, err)

	dbURL, err := pgc.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	return &postgresContainer{Ctx: ctx, Container: *pgc, URI: dbURL}
}

// ---------------
// HELPER FUNCS
// ---------------

type APITestClient struct {
	Mux       http.Handler
	W         *httptest.ResponseRecorder
	testState *testing.T
}

// Request records a new request, saves the response to a new recorder for
// reference, and asserts against the response status code.
func (c *APITestClient) Request(req *http.Request, expectedCode int) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c.Mux.ServeHTTP(w, req)
	c.W = w
	if expectedCode != 0 {
		assert.Equal(c.testState, expectedCode, w.Code, "unexpected status for %s %s: %s", req.Method, req.URL.Path, w.Body.String())
	}
	return w
}

func (c *APITestClient) GetJSONField(field string) (any, error) {
	return pt.GetJSONField(c.W, field)
}

func (c *APITestClient) GetJSONFieldAsString(field string) string {
	fieldRetrieved, err := c.GetJSONField(field)
	require.NoError(c.testState, err)
	val, ok := fieldRetrieved.(string)
	require.True(c.testState, ok, "field %s was not a string", field)
	return val
}

func (c *APITestClient) GetJSONFieldAsInt64(field string) int64 {
	fieldRetrieved, err := c.GetJSONField(field)
	require.NoError(c.testState, err)
	val, ok := fieldRetrieved.(int64)
	require.True(c.testState, ok, "field %s was not an int64", field)
	return val
}

// DecodeBody unmarshals the latest response body into out.
func (c *APITestClient) DecodeBody(out any) {
	require.NoError(c.testState, json.Unmarshal(c.W.Body.Bytes(), out))
}
