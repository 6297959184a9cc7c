package application

import (
	"testing"
	"time"

	"github.com/bnema/vpnadm/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func mockAnyContext() interface{} {
	return mock.Anything
}

func fixedClock(t *testing.T) *mocks.MockClock {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()
	return clock
}
