package deps

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

type Deps struct {
	Logger *zap.SugaredLogger
	Rand   *rand.Rand
	Now    func() time.Time
}

func NewDependencies(logger *zap.SugaredLogger) *Deps {
	return &Deps{
		Logger: logger,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:    time.Now,
	}
}
