package log

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &entry))
		out = append(out, entry)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warning "))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestNew_ServiceNameAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", ServiceName: "imei-service", Output: &buf})

	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["message"])
	assert.Equal(t, "imei-service", lines[0][FieldService])
}

func TestCtx_FallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf})

	ctx := WithLogger(context.Background(), logger)
	l := Ctx(ctx)
	l.Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")

	assert.Equal(t, L(), Ctx(context.Background()))
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	r := gin.New()
	r.Use(GinMiddleware(New(Config{Output: &buf})))
	r.GET("/items/:id", func(c *gin.Context) {
		l := Ctx(c.Request.Context())
		l.Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	t.Run("generates a request id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/1", nil))

		reqID := w.Header().Get(headerRequestID)
		assert.NotEmpty(t, reqID)

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 2)
		assert.Equal(t, reqID, lines[0][FieldRequestID])
		assert.Equal(t, "/items/:id", lines[1]["route"])
		assert.EqualValues(t, http.StatusNoContent, lines[1][FieldStatus])
	})

	t.Run("keeps the caller's request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/items/2", nil)
		req.Header.Set(headerRequestID, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(headerRequestID))
		for _, line := range decodeLines(t, &buf) {
			assert.Equal(t, "req-123", line[FieldRequestID])
		}
	})
}

func TestUnaryServerInterceptor(t *testing.T) {
	var buf bytes.Buffer
	interceptor := UnaryServerInterceptor(New(Config{Output: &buf}))
	info := &grpc.UnaryServerInfo{FullMethod: "/imei.v1.IMEIService/Validate"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(metadataKeyRequestID, "rpc-1"))
	_, err := interceptor(ctx, nil, info, func(ctx context.Context, _ interface{}) (interface{}, error) {
		return nil, status.Error(codes.InvalidArgument, "bad count")
	})
	require.Error(t, err)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "rpc-1", lines[0][FieldRequestID])
	assert.Equal(t, info.FullMethod, lines[0][FieldGRPCMethod])
	assert.Equal(t, codes.InvalidArgument.String(), lines[0][FieldGRPCCode])
	assert.Equal(t, "info", lines[0]["level"])

	buf.Reset()
	_, err = interceptor(context.Background(), nil, info, func(ctx context.Context, _ interface{}) (interface{}, error) {
		return nil, status.Error(codes.Internal, "entropy")
	})
	require.Error(t, err)
	lines = decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
	assert.NotEmpty(t, lines[0][FieldRequestID])
}
