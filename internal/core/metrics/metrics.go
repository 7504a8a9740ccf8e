package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	contactsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "phonebook_contacts",
		Help: "Number of contacts currently held by the store",
	})
	storeOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "phonebook_store_operations_total", Help: "Contact store operations by outcome"},
		[]string{"op", "result"},
	)
	validationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "phonebook_validation_failures_total", Help: "Rejected form fields by failing check"},
		[]string{"form", "field", "kind"},
	)
)

func init() { prometheus.MustRegister(contactsGauge, storeOps, validationFailures) }

// StoreOp 记录一次存储操作；hit=false 表示目标 id 不存在
func StoreOp(op string, hit bool) {
	result := "hit"
	if !hit {
		result = "miss"
	}
	storeOps.WithLabelValues(op, result).Inc()
}

func SetContacts(n int) { contactsGauge.Set(float64(n)) }

func ValidationFailure(form, field, kind string) {
	validationFailures.WithLabelValues(form, field, kind).Inc()
}
