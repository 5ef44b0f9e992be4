package ports

import "github.com/bnema/gfg-downloader/internal/domain"

// Reporter presents a workflow run to the user.
type Reporter interface {
	Stage(message string)
	Progress(event domain.ProgressEvent)
	Result(outcome domain.Outcome, hints []string)
}
