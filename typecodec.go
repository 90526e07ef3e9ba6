package typecodec

import (
	"github.com/dmitrymomot/typecodec/pkg/dialect"
	"github.com/dmitrymomot/typecodec/pkg/dialect/postgres"
	"github.com/dmitrymomot/typecodec/pkg/dialect/rediskv"
	"github.com/dmitrymomot/typecodec/pkg/dialect/sqlite"
)

// New returns a codec registry with the bundled dialect adapters
// registered: postgres, sqlite, and redis. Use dialect.NewRegistry directly
// to assemble a registry from your own adapters.
func New(opts ...dialect.Option) *dialect.Registry {
	reg := dialect.NewRegistry(opts...)
	for _, a := range []dialect.Adapter{postgres.New(), sqlite.New(), rediskv.New()} {
		// The registry is fresh and the bundled keys are distinct, so
		// registration cannot fail here.
		_ = reg.Register(a)
	}
	return reg
}
