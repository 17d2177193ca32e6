package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldownGate_FirstAdmit(t *testing.T) {
	// Подготовка
	gate := NewCooldownGate(2 * time.Minute)
	now := time.Now()

	// Действие и Проверки
	assert.True(t, gate.TryAdmit("T-001", 1, now))
}

func TestCooldownGate_SuppressesWithinWindow(t *testing.T) {
	// Подготовка
	gate := NewCooldownGate(2 * time.Minute)
	now := time.Now()
	assert.True(t, gate.TryAdmit("T-001", 1, now))

	// Действие и Проверки
	assert.False(t, gate.TryAdmit("T-001", 1, now.Add(time.Second)))
	assert.False(t, gate.TryAdmit("T-001", 1, now.Add(2*time.Minute-time.Millisecond)))
}

func TestCooldownGate_AdmitsAfterWindow(t *testing.T) {
	// Подготовка
	gate := NewCooldownGate(2 * time.Minute)
	now := time.Now()
	assert.True(t, gate.TryAdmit("T-001", 1, now))

	// Действие и Проверки
	assert.True(t, gate.TryAdmit("T-001", 1, now.Add(2*time.Minute)))
}

func TestCooldownGate_IndependentPairs(t *testing.T) {
	// Подготовка
	gate := NewCooldownGate(2 * time.Minute)
	now := time.Now()
	assert.True(t, gate.TryAdmit("T-001", 1, now))

	// Действие и Проверки: другая зона и другой турист проходят независимо
	assert.True(t, gate.TryAdmit("T-001", 2, now))
	assert.True(t, gate.TryAdmit("T-002", 1, now))
}

func TestCooldownGate_ResetAllowsImmediateRetry(t *testing.T) {
	// Подготовка
	gate := NewCooldownGate(2 * time.Minute)
	now := time.Now()
	assert.True(t, gate.TryAdmit("T-001", 1, now))

	// Действие
	gate.Reset("T-001", 1)

	// Проверки
	assert.True(t, gate.TryAdmit("T-001", 1, now))
}

func TestCooldownGate_ConcurrentAdmitIsExclusive(t *testing.T) {
	// Подготовка
	gate := NewCooldownGate(2 * time.Minute)
	now := time.Now()

	var admitted int64
	var wg sync.WaitGroup

	// Действие: конкурирующие обновления одной пары турист/зона
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if gate.TryAdmit("T-001", 1, now) {
				atomic.AddInt64(&admitted, 1)
			}
		}()
	}
	wg.Wait()

	// Проверки: право на создание оповещения получает ровно один
	assert.Equal(t, int64(1), admitted)
}
