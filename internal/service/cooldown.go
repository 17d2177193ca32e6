package service

import (
	"fmt"
	"sync"
	"time"
)

// CooldownGate подавляет повторные критические оповещения для пары турист/зона
// внутри скользящего окна. Записи не вычищаются со временем: рост ограничен
// произведением числа туристов на число зон.
type CooldownGate struct {
	mu     sync.Mutex
	window time.Duration
	last   map[string]time.Time
}

// NewCooldownGate создает гейт с заданным окном подавления
func NewCooldownGate(window time.Duration) *CooldownGate {
	return &CooldownGate{
		window: window,
		last:   make(map[string]time.Time),
	}
}

// TryAdmit атомарно проверяет и резервирует право на создание критического
// оповещения. Возвращает true и фиксирует now, если для пары нет записи или
// прошло не меньше окна с последнего успешного создания.
func (g *CooldownGate) TryAdmit(touristID string, zoneID int64, now time.Time) bool {
	key := cooldownKey(touristID, zoneID)

	g.mu.Lock()
	defer g.mu.Unlock()

	if prev, ok := g.last[key]; ok && now.Sub(prev) < g.window {
		return false
	}
	g.last[key] = now
	return true
}

// Reset снимает резервацию для пары. Вызывается, когда создание оповещения
// после успешного TryAdmit не состоялось: окно отсчитывается от последнего
// успешного создания, а не от неудачной попытки.
func (g *CooldownGate) Reset(touristID string, zoneID int64) {
	key := cooldownKey(touristID, zoneID)

	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.last, key)
}

func cooldownKey(touristID string, zoneID int64) string {
	return fmt.Sprintf("%s_%d", touristID, zoneID)
}
