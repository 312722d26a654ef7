package order

import "github.com/fekuna/omnipos-storefront/internal/model"

type Step struct {
	Status  model.OrderStatus `json:"status"`
	Reached bool              `json:"reached"`
}

var progression = []model.OrderStatus{model.OrderProcessing, model.OrderShipped, model.OrderDelivered}

// Timeline derives the delivery progress from status alone. Cancelled and
// unknown statuses have no timeline.
func Timeline(status model.OrderStatus) []Step {
	at := -1
	for i, s := range progression {
		if s == status {
			at = i
		}
	}
	if at < 0 {
		return []Step{}
	}
	steps := make([]Step, len(progression))
	for i, s := range progression {
		steps[i] = Step{Status: s, Reached: i <= at}
	}
	return steps
}
