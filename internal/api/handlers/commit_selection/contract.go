package commit_selection

import (
	"context"

	commitSelection "github.com/m04kA/HMS-FrontdeskService/internal/usecase/commit_selection"
)

type CommitSelectionUseCase interface {
	Execute(ctx context.Context, req *commitSelection.Request) (*commitSelection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
