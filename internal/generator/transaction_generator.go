package generator

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"transactions-service/internal/apperr"
	"transactions-service/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Профили сумм для генерации
const (
	ProfileSmall  = "small"
	ProfileMedium = "medium"
	ProfileLarge  = "large"
	ProfileRefund = "refund"
)

// Profiles - все поддерживаемые профили
var Profiles = []string{ProfileSmall, ProfileMedium, ProfileLarge, ProfileRefund}

// TransactionGenerator безопасен для конкурентного использования
type TransactionGenerator struct {
	mu   sync.Mutex
	rand *rand.Rand
	from time.Time
	days int
}

func NewTransactionGenerator() *TransactionGenerator {
	return NewSeededTransactionGenerator(time.Now().UnixNano())
}

// NewSeededTransactionGenerator создает генератор с фиксированным seed для воспроизводимых данных
func NewSeededTransactionGenerator(seed int64) *TransactionGenerator {
	return &TransactionGenerator{
		rand: rand.New(rand.NewSource(seed)),
		from: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		days: 5 * 365,
	}
}

// GenerateInput генерирует валидные данные транзакции с заданным профилем суммы
func (g *TransactionGenerator) GenerateInput(profile string) models.TransactionInput {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.input(profile)
}

// GenerateRandomInput генерирует данные транзакции со случайным профилем
func (g *TransactionGenerator) GenerateRandomInput() models.TransactionInput {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.input(Profiles[g.rand.Intn(len(Profiles))])
}

// ValidateProfile отклоняет профили вне списка Profiles; пустой профиль означает случайный
func ValidateProfile(profile string) error {
	if profile == "" {
		return nil
	}
	if err := validate.Var(profile, "oneof=small medium large refund"); err != nil {
		return apperr.NewValidationError(
			apperr.KindBadValue, "profile", "profile must be one of %v, got '%s'", Profiles, profile,
		)
	}
	return nil
}

// GeneratePayload генерирует тело запроса в том виде, в каком его присылает клиент;
// пустой profile - случайный профиль
func (g *TransactionGenerator) GeneratePayload(profile string) (map[string]interface{}, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	var in models.TransactionInput
	if profile == "" {
		in = g.GenerateRandomInput()
	} else {
		in = g.GenerateInput(profile)
	}
	return map[string]interface{}{
		"amount": json.Number(strconv.FormatInt(in.Amount, 10)),
		"date":   in.Date.Format(models.DateLayout),
	}, nil
}

func (g *TransactionGenerator) input(profile string) models.TransactionInput {
	return models.TransactionInput{
		Amount: g.amount(profile),
		Date:   g.date(),
	}
}

func (g *TransactionGenerator) amount(profile string) int64 {
	switch profile {
	case ProfileSmall:
		return 1 + g.rand.Int63n(1000)
	case ProfileMedium:
		return 1000 + g.rand.Int63n(99000)
	case ProfileLarge:
		return 100000 + g.rand.Int63n(9900000)
	case ProfileRefund:
		return -(1 + g.rand.Int63n(10000))
	default:
		return 1 + g.rand.Int63n(1000)
	}
}

func (g *TransactionGenerator) date() time.Time {
	return g.from.AddDate(0, 0, g.rand.Intn(g.days))
}
