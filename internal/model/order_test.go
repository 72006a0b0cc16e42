package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     OrderStatus
		to       OrderStatus
		expected bool
	}{
		{"pending to confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"confirmed to preparing", OrderStatusConfirmed, OrderStatusPreparing, true},
		{"preparing to out for delivery", OrderStatusPreparing, OrderStatusOutForDelivery, true},
		{"out for delivery to delivered", OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{"pending cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"preparing cancelled", OrderStatusPreparing, OrderStatusCancelled, true},
		{"out for delivery cancelled", OrderStatusOutForDelivery, OrderStatusCancelled, true},
		{"skip a state", OrderStatusPending, OrderStatusPreparing, false},
		{"move backwards", OrderStatusPreparing, OrderStatusConfirmed, false},
		{"same state", OrderStatusPending, OrderStatusPending, false},
		{"delivered cannot be cancelled", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusPending, false},
		{"cancelled twice", OrderStatusCancelled, OrderStatusCancelled, false},
		{"unknown target", OrderStatusPending, OrderStatus("refunded"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderStatusOutForDelivery.Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("shipped").Valid())
}

func TestHealthProfile_HasCondition(t *testing.T) {
	p := &HealthProfile{MedicalConditions: []string{ConditionDiabetes, ConditionHeart}}

	assert.True(t, p.HasCondition(ConditionDiabetes))
	assert.True(t, p.HasCondition(ConditionHeart))
	assert.False(t, p.HasCondition(ConditionBloodPressure))
}
