package ports

import "go.trai.ch/serv/internal/core/domain"

// HMRTransformer patches hot-reload accept call sites in a module that
// statically imports the reload client. It records replacements into the
// same edit list the rewriter is accumulating, so all patches land in one
// splice over the original source.
//
//go:generate mockgen -source=hmr.go -destination=mocks/mock_hmr.go -package=mocks
type HMRTransformer interface {
	RewriteAccepts(source, importer string, edits *domain.EditList) error
}
