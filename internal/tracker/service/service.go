package service

import (
	"io"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/clock"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
	commoncrypto "github.com/AlibekovAA/exercise-tracker/backend/internal/common/crypto"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/resilience"
	exerciserepo "github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/repository"
	userrepo "github.com/AlibekovAA/exercise-tracker/backend/internal/user/repository"
)

// TrackerService records users and their exercises and answers log queries.
type TrackerService struct {
	users       userrepo.Repository
	exercises   exerciserepo.Repository
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	validate    *validator.Validate
	breaker     *resilience.CircuitBreaker
	log         *logger.Logger
}

type TrackerServiceDeps struct {
	Users       userrepo.Repository
	Exercises   exerciserepo.Repository
	IDGenerator commoncrypto.IDGenerator
	Clock       clock.Clock
	Log         *logger.Logger
}

type TrackerServiceConfig struct {
	CircuitBreakerThreshold int32
	CircuitBreakerTimeout   time.Duration
	CircuitBreakerReset     time.Duration
}

func DefaultTrackerServiceConfig() TrackerServiceConfig {
	return TrackerServiceConfig{
		CircuitBreakerThreshold: constants.DefaultCircuitBreakerThreshold,
		CircuitBreakerTimeout:   constants.DefaultCircuitBreakerTimeout,
		CircuitBreakerReset:     constants.DefaultCircuitBreakerReset,
	}
}

func NewTrackerService(deps TrackerServiceDeps, config TrackerServiceConfig) *TrackerService {
	if deps.IDGenerator == nil {
		deps.IDGenerator = commoncrypto.NewUUIDGenerator()
	}
	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}
	if deps.Log == nil {
		deps.Log = logger.NewWithWriter(io.Discard, "tracker", "error")
	}

	return &TrackerService{
		users:       deps.Users,
		exercises:   deps.Exercises,
		idGenerator: deps.IDGenerator,
		clock:       deps.Clock,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			Threshold:  config.CircuitBreakerThreshold,
			Timeout:    config.CircuitBreakerTimeout,
			ResetAfter: config.CircuitBreakerReset,
			Name:       "tracker_store",
			IsFailure: func(err error) bool {
				return err != nil && !isExpectedStoreError(err)
			},
			Now:    deps.Clock.Now,
			Logger: deps.Log,
		}),
		log: deps.Log,
	}
}
