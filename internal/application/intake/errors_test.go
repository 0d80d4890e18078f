package intake

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

func TestErrorKinds_AreLabelled(t *testing.T) {
	for _, k := range ErrorKinds() {
		assert.NotEmpty(t, k.Label(), k)
		assert.NotEqual(t, string(k), k.Label())
	}
}

func TestErrorKind_IsFatal(t *testing.T) {
	fatal := map[ErrorKind]bool{
		KindUploadFailed:       true,
		KindExtractionDegraded: false,
		KindAnalysisFailed:     true,
		KindGenerationFailed:   true,
		KindMetricsUpdateRace:  false,
	}
	for k, want := range fatal {
		assert.Equal(t, want, k.IsFatal(), k)
	}
}

func TestWorkflowError_UnwrapsToAppError(t *testing.T) {
	err := error(newWorkflowError(KindAnalysisFailed, apperrors.NewUpstreamError("strategic analysis failed")))

	assert.Contains(t, err.Error(), "AnalysisFailed")
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 502, appErr.Code)

	var wfErr *WorkflowError
	require.True(t, errors.As(err, &wfErr))
	assert.Equal(t, KindAnalysisFailed, wfErr.Kind)
}

func TestNewWarning(t *testing.T) {
	w := newWarning(KindExtractionDegraded, errors.New("timeout"))
	assert.Equal(t, KindExtractionDegraded, w.Kind)
	assert.Contains(t, w.Message, KindExtractionDegraded.Label())
	assert.Contains(t, w.Message, "timeout")
}
