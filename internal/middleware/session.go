package middleware

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"lmscl/internal/logger"
	"lmscl/internal/reqctx"
	"lmscl/internal/session"

	"go.uber.org/zap"
)

// sessionHeader lets Logging, which runs outside Sessions, see the session id.
const sessionHeader = "X-Session-ID"

// Sessions loads the visitor's session from the signed cookie, or starts a new
// one, and puts it into the request context together with the backend token.
// The session is written back right before the response headers go out so
// that a redirected browser always finds the updated state.
func Sessions(store session.Store, codec *session.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			sess := load(ctx, r, store, codec)

			if err := codec.Write(w, sess.ID); err != nil {
				logger.WithCtx(ctx).Error("session: cookie not written", zap.Error(err))
			}
			w.Header().Set(sessionHeader, sess.ID)

			ctx = session.WithSession(ctx, sess)
			ctx = reqctx.WithSessionID(ctx, sess.ID)
			ctx = reqctx.WithAuthToken(ctx, sess.AuthToken)

			sw := &sessionWriter{ResponseWriter: w, persist: func() {
				if err := store.Save(context.WithoutCancel(ctx), sess); err != nil {
					logger.WithCtx(ctx).Error("session: save failed", zap.Error(err))
				}
			}}
			next.ServeHTTP(sw, r.WithContext(ctx))
			sw.flush()
		})
	}
}

func load(ctx context.Context, r *http.Request, store session.Store, codec *session.Codec) *session.Session {
	id, err := codec.Read(r)
	if err != nil {
		return session.New()
	}

	sess, err := store.Get(ctx, id)
	switch {
	case err == nil:
		return sess
	case errors.Is(err, session.ErrNotFound):
		logger.WithCtx(ctx).Debug("session: expired, starting a new one", zap.String("session_id", id))
	default:
		logger.WithCtx(ctx).Warn("session: load failed, starting a new one", zap.String("session_id", id), zap.Error(err))
	}
	return session.New()
}

type sessionWriter struct {
	http.ResponseWriter
	persist func()
	once    sync.Once
}

func (sw *sessionWriter) flush() {
	sw.once.Do(sw.persist)
}

func (sw *sessionWriter) WriteHeader(code int) {
	sw.flush()
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *sessionWriter) Write(b []byte) (int, error) {
	sw.flush()
	return sw.ResponseWriter.Write(b)
}

// FlushError saves the session before the headers are flushed.
func (sw *sessionWriter) FlushError() error {
	sw.flush()
	return http.NewResponseController(sw.ResponseWriter).Flush()
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sw *sessionWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
