package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/sony/gobreaker"
)

// Состояния контроллера опроса
const (
	StateIdle    = "idle"
	StatePolling = "polling"
)

// DefaultPollInterval - период перезапроса заказа в неконечном статусе
const DefaultPollInterval = 20 * time.Second

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "localeats-orders",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker:", name, from.String(), "->", to.String())
		},
	})
}

// Snapshot - результат очередного опроса заказа
type Snapshot struct {
	Order *models.Order
	Err   error
}

// Poller - контроллер опроса заказа. Пока заказ в неконечном статусе,
// состояние Polling и перезапрос идёт по таймеру; в состоянии Idle
// таймер не взводится вовсе. Ошибка выборки переводит контроллер в Idle,
// повторная попытка запускается вручную через Refetch.
type Poller struct {
	API      client.API
	Breaker  *gobreaker.CircuitBreaker
	OrderID  string
	Interval time.Duration

	updates   chan Snapshot
	kick      chan struct{}
	quit      chan struct{}
	waitGroup sync.WaitGroup

	mu    sync.RWMutex
	state string
}

// NewPoller - конструктор контроллера опроса заказа
func NewPoller(api client.API, orderID string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		API:      api,
		Breaker:  InitCircuitBreaker(),
		OrderID:  orderID,
		Interval: interval,
		updates:  make(chan Snapshot, 4),
		kick:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
		state:    StateIdle,
	}
}

// Updates - канал снимков заказа для представления
func (p *Poller) Updates() <-chan Snapshot {
	return p.updates
}

// State - текущее состояние контроллера
func (p *Poller) State() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *Poller) setState(state string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
}

// Start - запускает контроллер в фоне
func (p *Poller) Start(ctx context.Context) {
	p.waitGroup.Add(1)
	go p.Run(ctx)
}

// Stop - корректно останавливает контроллер: таймер снимается, канал
// снимков закрывается, чтобы ожидающий читатель не завис навсегда
func (p *Poller) Stop() {
	close(p.quit)
	p.waitGroup.Wait()
	close(p.updates)
}

// Refetch - ручной повтор выборки ("Try Again")
func (p *Poller) Refetch() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Run - основная рабочая логика
func (p *Poller) Run(ctx context.Context) {
	defer p.waitGroup.Done()

	// первичная выборка сразу после запуска
	p.Poll(ctx)

	for {
		// таймер взводится только в состоянии Polling;
		// после конечного статуса или ошибки новый тик не планируется
		var tick <-chan time.Time
		var timer *time.Timer
		if p.State() == StatePolling {
			timer = time.NewTimer(p.Interval)
			tick = timer.C
		}

		select {
		case <-p.quit:
			if timer != nil {
				timer.Stop()
			}
			logger.Info("Order poller signal stop", p.OrderID)
			return
		case <-p.kick:
			if timer != nil {
				timer.Stop()
			}
			p.Poll(ctx)
		case <-tick:
			p.Poll(ctx)
		}
	}
}

// Poll - одиночная выборка заказа с публикацией снимка
func (p *Poller) Poll(ctx context.Context) {
	result, err := p.Breaker.Execute(func() (interface{}, error) {
		return p.API.GetOrder(ctx, p.OrderID)
	})
	if err != nil {
		logger.Error("Error order polling", p.OrderID, err)
		p.setState(StateIdle)
		p.publish(Snapshot{Err: err})
		return
	}

	order := result.(*models.Order)
	if order.Terminal() {
		p.setState(StateIdle)
	} else {
		p.setState(StatePolling)
	}
	p.publish(Snapshot{Order: order})
}

// publish - неблокирующая публикация снимка, при переполнении
// вытесняется самый старый
func (p *Poller) publish(snapshot Snapshot) {
	for {
		select {
		case p.updates <- snapshot:
			return
		default:
			select {
			case <-p.updates:
			default:
			}
		}
	}
}
