package seedreadings

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/okian/pulse/internal/domain/validate"
	"github.com/okian/pulse/pkg/logger"
)

// Profile case constants. Each case targets one clinical category so a
// seeded base exercises the whole legend.
const (
	caseNormal    = 0
	caseElevated  = 1
	caseStageOne  = 2
	caseStageTwo  = 3
	caseCrisisGap = 4
	caseWideRange = 5
	profileCount  = 6
)

// randomInt returns a random int in [min, max] using crypto/rand.
func randomInt(min, max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
	return min + int(n.Int64())
}

// generateReadings creates submissions spread across the configured names
// and the past Days days, with pressures drawn from varied clinical
// profiles. Timestamps ascend with the index so seeded series sort cleanly.
func generateReadings(ctx context.Context, config *Config, stats *Stats) ([]validate.Submission, error) {
	logger.Get().Info(ctx, "generating readings",
		logger.Int("numReadings", config.NumReadings),
		logger.Int("names", len(config.Names)))

	subs := make([]validate.Submission, config.NumReadings)
	span := time.Duration(config.Days) * 24 * time.Hour
	start := time.Now().UTC().Add(-span)
	step := span / time.Duration(config.NumReadings+1)

	for i := range subs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		when := start.Add(time.Duration(i+1) * step)
		systolic, diastolic := generatePressurePair()
		subs[i] = validate.Submission{
			Date:      when.Format(validate.DateLayout),
			Time:      when.Format(validate.TimeLayout),
			Systolic:  systolic,
			Diastolic: diastolic,
			Name:      config.Names[randomInt(0, len(config.Names)-1)],
		}
	}

	stats.ReadingsGenerated = len(subs)
	logger.Get().Info(ctx, "generated readings successfully", logger.Int("count", len(subs)))
	return subs, nil
}

// generatePressurePair draws one systolic/diastolic pair from a random
// clinical profile. All values stay inside the validator's [0,200] range.
func generatePressurePair() (int, int) {
	switch randomInt(0, profileCount-1) {
	case caseNormal:
		return randomInt(95, 119), randomInt(60, 79)
	case caseElevated:
		return randomInt(120, 129), randomInt(60, 79)
	case caseStageOne:
		return randomInt(130, 139), randomInt(80, 88)
	case caseStageTwo:
		return randomInt(140, 200), randomInt(90, 120)
	case caseCrisisGap:
		// Only diastolic exactly 89 reaches the crisis rule; everything
		// else is taken by an earlier guard.
		return randomInt(95, 119), 89
	default:
		return randomInt(0, 200), randomInt(0, 200)
	}
}
