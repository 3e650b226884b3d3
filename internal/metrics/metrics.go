package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics — счётчики бота. Все методы безопасны для nil-получателя,
// чтобы бот работал и без метрик.
type Metrics struct {
	Commands      *prometheus.CounterVec // команды по имени и исходу
	Upstream      *prometheus.CounterVec // запросы к OSRS API по эндпоинту и статусу
	DirectorySize prometheus.Gauge       // размер справочника предметов
}

// New регистрирует метрики в reg (глобальный или тестовый реестр).
func New(reg prometheus.Registerer) *Metrics {
	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "osrsbot_commands_total",
		Help: "Chat commands handled, by command and outcome",
	}, []string{"command", "outcome"})

	upstream := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "osrsbot_upstream_requests_total",
		Help: "HTTP requests to OSRS APIs, by endpoint and status code (0 = transport error)",
	}, []string{"endpoint", "status"})

	dirSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "osrsbot_item_directory_size",
		Help: "Number of items loaded into the item directory at startup",
	})

	reg.MustRegister(commands, upstream, dirSize)

	return &Metrics{
		Commands:      commands,
		Upstream:      upstream,
		DirectorySize: dirSize,
	}
}

func (m *Metrics) ObserveCommand(command, outcome string) {
	if m == nil {
		return
	}
	m.Commands.WithLabelValues(command, outcome).Inc()
}

func (m *Metrics) ObserveUpstream(endpoint string, status int) {
	if m == nil {
		return
	}
	m.Upstream.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

func (m *Metrics) SetDirectorySize(n int) {
	if m == nil {
		return
	}
	m.DirectorySize.Set(float64(n))
}
