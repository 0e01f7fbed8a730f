package payments

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"parlour/db"
	"parlour/models"
	"parlour/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// asInt handles the numeric types the BSON decoder may hand back.
func asInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func computeRequestHash(r *http.Request, bodyBytes []byte) string {
	h := sha256.New()
	h.Write([]byte(r.Method + ":" + r.URL.Path + ":"))
	h.Write(bodyBytes)
	return hex.EncodeToString(h.Sum(nil))
}

// CaptureResponseWriter wraps http.ResponseWriter to capture status and body.
type CaptureResponseWriter struct {
	w           http.ResponseWriter
	statusCode  int
	buf         bytes.Buffer
	wroteHeader bool
}

func NewCaptureResponseWriter(w http.ResponseWriter) *CaptureResponseWriter {
	return &CaptureResponseWriter{w: w, statusCode: http.StatusOK}
}

func (c *CaptureResponseWriter) Header() http.Header {
	return c.w.Header()
}

func (c *CaptureResponseWriter) WriteHeader(statusCode int) {
	if !c.wroteHeader {
		c.statusCode = statusCode
		c.w.WriteHeader(statusCode)
		c.wroteHeader = true
	}
}

func (c *CaptureResponseWriter) Write(b []byte) (int, error) {
	c.buf.Write(b)
	return c.w.Write(b)
}

func (c *CaptureResponseWriter) Status() int {
	return c.statusCode
}

func (c *CaptureResponseWriter) BodyBytes() []byte {
	return c.buf.Bytes()
}

// Idempotency ensures safe replay behavior when the client provides an
// Idempotency-Key header. Without the header it is a pass-through, so the
// default ledger behavior (unconditional append) is unchanged.
//
//   - First request for a key: run the handler, cache the response.
//   - Replay with matching request hash: return the cached response.
//   - Replay with a different body: 409 Conflict.
func (s *Service) Idempotency(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		key := r.Header.Get("Idempotency-Key")
		if key == "" {
			next(w, r, ps)
			return
		}

		// Limit body size to 1 MB to prevent memory issues
		bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "failed to read request body")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		reqHash := computeRequestHash(r, bodyBytes)
		now := time.Now()
		rec := models.IdempotencyRecord{
			Key:         key,
			Method:      r.Method,
			Path:        r.URL.Path,
			RequestHash: reqHash,
			CreatedAt:   now,
			ExpiresAt:   now.Add(24 * time.Hour),
		}

		ctx := r.Context()
		_, err = s.store.Idempotency.InsertOne(ctx, rec)
		if err == nil {
			// First time: capture response
			crw := NewCaptureResponseWriter(w)
			next(crw, r, ps)

			var parsed interface{}
			if err := json.Unmarshal(crw.BodyBytes(), &parsed); err != nil {
				parsed = string(crw.BodyBytes())
			}

			responseObj := map[string]interface{}{
				"status": crw.Status(),
				"body":   parsed,
			}

			_, _ = s.store.Idempotency.UpdateOne(ctx,
				bson.M{"key": key},
				bson.M{"$set": bson.M{"response": responseObj}},
			)
			return
		}

		if !db.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusInternalServerError, "idempotency lookup error")
			return
		}

		var existing models.IdempotencyRecord
		if err := s.store.Idempotency.FindOne(ctx, bson.M{"key": key}).Decode(&existing); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "idempotency lookup error")
			return
		}

		if existing.RequestHash != reqHash {
			utils.RespondWithError(w, http.StatusConflict, "idempotency-key conflict")
			return
		}

		if existing.Response != nil {
			status := asInt(existing.Response["status"])
			if status == 0 {
				status = http.StatusOK
			}
			body := existing.Response["body"]
			utils.RespondWithJSON(w, status, body)
			return
		}

		// In-flight request, let handler run
		next(w, r, ps)
	}
}
