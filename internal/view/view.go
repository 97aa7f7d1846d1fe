package view

import (
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smarttoystore/dashboard/internal/model"
	"github.com/smarttoystore/dashboard/internal/notify"
)

type Storage interface {
	GetOrders(category string, limit int) ([]model.Order, error)
	ClearOrders() (int64, error)
}

// Feed is one open change-subscription as seen by a screen.
type Feed interface {
	Events() <-chan model.ChangeEvent
	Subscribed() <-chan struct{}
	Closed() <-chan error
	Unsubscribe() error
}

type Opener interface {
	Subscribe(name, category string) (Feed, error)
}

// View owns the live order list of one screen. The initial query and the
// change-subscription both write the list without any ordering barrier
// between them; whichever finishes last wins for a given row.
type View struct {
	cfg     Config
	storage Storage
	feeds   Opener
	trigger *notify.Trigger
	lg      *zap.SugaredLogger

	mu        sync.RWMutex
	orders    []model.Order
	connected bool
	feed      Feed

	stopOnce sync.Once
}

func New(cfg Config, storage Storage, feeds Opener, trigger *notify.Trigger, lg *zap.SugaredLogger) *View {
	return &View{
		cfg:     cfg,
		storage: storage,
		feeds:   feeds,
		trigger: trigger,
		lg:      lg,
		orders:  make([]model.Order, 0),
	}
}

func (v *View) Info() model.DashboardInfo {
	return v.cfg.Info()
}

func (v *View) IsAdmin() bool {
	return v.cfg.Admin
}

// Start kicks off the initial query and the change-subscription. A failure
// on either side leaves the screen degraded (empty list or a red
// disconnected badge) but never propagates.
func (v *View) Start() {
	go v.loadInitial()

	feed, err := v.feeds.Subscribe(v.cfg.Channel, v.cfg.Category)
	if err != nil {
		v.lg.Errorf("%s: opening subscription failed: %v", v.cfg.Slug, err)
		return
	}

	v.mu.Lock()
	v.feed = feed
	v.mu.Unlock()

	go v.consume(feed)
}

// Stop releases the subscription and the cue set. Idempotent.
func (v *View) Stop() {
	v.stopOnce.Do(func() {
		v.mu.Lock()
		feed := v.feed
		v.mu.Unlock()

		if feed != nil {
			if err := feed.Unsubscribe(); err != nil {
				v.lg.Warnf("%s: unsubscribe failed: %v", v.cfg.Slug, err)
			}
		}

		v.trigger.Release()
		v.setConnected(false)
	})
}

func (v *View) Arm() {
	v.trigger.Arm()
}

// Clear wipes the backend table and then the local list. On failure the
// local list is left untouched and the error surfaces to the caller.
func (v *View) Clear() error {
	if !v.cfg.Admin {
		return model.ErrNotAdmin
	}

	affected, err := v.storage.ClearOrders()
	if err != nil {
		v.lg.Errorf("%s: clearing orders failed: %v", v.cfg.Slug, err)
		return err
	}

	v.mu.Lock()
	v.orders = make([]model.Order, 0)
	v.mu.Unlock()

	v.lg.Infof("%s: cleared %d orders", v.cfg.Slug, affected)
	return nil
}

// State renders the screen. While audio is still locked only the enable
// prompt is exposed.
func (v *View) State() model.DashboardState {
	state := model.DashboardState{
		Slug:     v.cfg.Slug,
		Title:    v.cfg.Title,
		Icon:     v.cfg.Icon,
		Theme:    v.cfg.Theme,
		Category: v.cfg.Category,
		Orders:   make([]model.Order, 0),
	}

	if !v.trigger.Armed() {
		state.Prompt = v.prompt()
		return state
	}

	v.mu.RLock()
	state.Connected = v.connected
	state.Orders = append(state.Orders, v.orders...)
	v.mu.RUnlock()

	state.AudioEnabled = true
	state.LastCue = v.trigger.LastCue()
	state.Stats = computeStats(state.Orders, v.cfg.Admin)

	return state
}

func (v *View) prompt() string {
	if v.cfg.Admin {
		return "Click to enable audio notifications for new orders"
	}
	return "Click to enable audio notifications for your orders"
}

func (v *View) loadInitial() {
	orders, err := v.storage.GetOrders(v.cfg.Category, v.cfg.MaxOrders)
	if err != nil {
		v.lg.Errorf("%s: fetching orders failed: %v", v.cfg.Slug, err)
		return
	}

	v.mu.Lock()
	v.orders = orders
	v.mu.Unlock()
}

func (v *View) consume(feed Feed) {
	subscribed := feed.Subscribed()

	for {
		select {
		case <-subscribed:
			v.setConnected(true)
			subscribed = nil
		case err := <-feed.Closed():
			v.setConnected(false)
			v.lg.Infof("%s: subscription closed: %v", v.cfg.Slug, err)
			return
		case event, ok := <-feed.Events():
			if !ok {
				v.setConnected(false)
				return
			}
			v.apply(event)
		}
	}
}

func (v *View) apply(event model.ChangeEvent) {
	switch event.Kind {
	case model.EventInsert:
		v.insert(event.Row)
	case model.EventUpdate:
		v.update(event.Row)
	case model.EventDelete:
		v.remove(event.Row)
	}
}

func (v *View) insert(row model.Order) {
	v.mu.Lock()
	v.orders = append([]model.Order{row}, v.orders...)
	if v.cfg.MaxOrders > 0 && len(v.orders) > v.cfg.MaxOrders {
		v.orders = v.orders[:v.cfg.MaxOrders]
	}
	v.mu.Unlock()

	v.trigger.Notify(row.Category)
}

func (v *View) update(row model.Order) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.orders {
		if v.orders[i].ID == row.ID {
			v.orders[i] = row
			return
		}
	}
	// unknown id: the event is dropped
}

func (v *View) remove(row model.Order) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.orders {
		if v.orders[i].ID == row.ID {
			v.orders = append(v.orders[:i], v.orders[i+1:]...)
			return
		}
	}
}

func (v *View) setConnected(connected bool) {
	v.mu.Lock()
	v.connected = connected
	v.mu.Unlock()
}

// computeStats derives the stat cards from the current list. It is a pure
// function of the list contents.
func computeStats(orders []model.Order, withRevenue bool) model.Stats {
	stats := model.Stats{Total: len(orders)}

	revenue := decimal.Zero
	for _, order := range orders {
		switch order.Status {
		case model.OrderStatusPending:
			stats.Pending++
		case model.OrderStatusProcessing, model.OrderStatusOnTheWay:
			stats.InProgress++
		case model.OrderStatusDelivered:
			stats.Delivered++
		}
		revenue = revenue.Add(order.TotalAmount)
	}

	if withRevenue {
		stats.Revenue = revenue.StringFixed(2)
	}

	return stats
}
