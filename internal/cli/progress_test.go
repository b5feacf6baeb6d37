package cli

import (
	"io"
	"testing"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/rotcoef/internal/cli/mocks"
	"github.com/agbru/rotcoef/internal/progress"
)

func TestDisplayProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSpinner := mocks.NewMockSpinner(ctrl)
	mockSpinner.EXPECT().Start()
	mockSpinner.EXPECT().Stop()
	mockSpinner.EXPECT().UpdateSuffix(gomock.Any()).MinTimes(2)

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(options ...spinner.Option) Spinner { return mockSpinner }

	updates := make(chan progress.Update, 2)
	updates <- progress.Update{EvaluatorIndex: 0, Value: 0.5}
	updates <- progress.Update{EvaluatorIndex: 0, Value: 1.0}
	close(updates)

	DisplayProgress(updates, []string{"direct"}, io.Discard)
}

func TestDisplayProgressNoEvaluators(t *testing.T) {
	updates := make(chan progress.Update)
	close(updates)

	// Must drain and return without starting a spinner.
	DisplayProgress(updates, nil, io.Discard)
}
