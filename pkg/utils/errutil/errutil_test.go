package errutil_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmseval/pkg/utils/errutil"
)

func TestHandle(t *testing.T) {
	t.Run("nil error passes through", func(t *testing.T) {
		gt.NoError(t, errutil.Handle(context.Background(), nil, "noop"))
	})

	t.Run("returns the original error", func(t *testing.T) {
		base := errors.New("boom")
		err := goerr.Wrap(base, "wrapped", goerr.V("vendor_id", "sanity"))
		got := errutil.Handle(context.Background(), err, "failed")
		gt.Error(t, got).Is(base)
	})
}

func TestHandleHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	errutil.HandleHTTP(context.Background(), rec, goerr.New("vendor not found"), http.StatusNotFound)

	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	gt.String(t, rec.Body.String()).Contains("vendor not found")
}
