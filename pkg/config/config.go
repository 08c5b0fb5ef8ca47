package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilTarget is returned when a nil pointer is passed to Load.
	ErrNilTarget = errors.New("config: nil target")

	// ErrParse is returned when environment variables cannot be parsed into
	// the target struct.
	ErrParse = errors.New("config: failed to parse environment")
)

var (
	mu     sync.Mutex
	loaded = make(map[string]any)

	dotenvOnce sync.Once
)

// Load populates the target struct from environment variables based on its
// `env` field tags. Each distinct struct type is parsed once per process;
// later calls for the same type return the cached value. A .env file in the
// working directory is loaded on first use when present.
//
// Example:
//
//	type Limits struct {
//		MaxLen int `env:"INSPECT_MAX_LEN" envDefault:"512"`
//	}
//
//	var limits Limits
//	if err := config.Load(&limits); err != nil {
//		// handle error
//	}
func Load[T any](target *T) error {
	if target == nil {
		return ErrNilTarget
	}

	dotenvOnce.Do(func() {
		// Missing .env files are expected outside development.
		_ = godotenv.Load()
	})

	key := typeKey[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*target = cached.(T)
		return nil
	}

	if err := env.Parse(target); err != nil {
		return errors.Join(ErrParse, err)
	}

	loaded[key] = *target
	return nil
}

// MustLoad works like Load but panics on failure. Intended for configuration
// the process cannot start without.
func MustLoad[T any](target *T) {
	if err := Load(target); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

func typeKey[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
