package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_Monotonic(t *testing.T) {
	cases := []struct {
		from, to PaymentStatus
		ok       bool
	}{
		{PaymentStatusPending, PaymentStatusInEscrow, true},
		{PaymentStatusInEscrow, PaymentStatusReleased, true},
		{PaymentStatusInEscrow, PaymentStatusRefunded, true},
		{PaymentStatusPending, PaymentStatusReleased, false},
		{PaymentStatusPending, PaymentStatusRefunded, false},
		{PaymentStatusInEscrow, PaymentStatusPending, false},
		{PaymentStatusReleased, PaymentStatusRefunded, false},
		{PaymentStatusRefunded, PaymentStatusReleased, false},
		{PaymentStatusReleased, PaymentStatusInEscrow, false},
		{PaymentStatusPending, PaymentStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	assert.True(t, PaymentStatusReleased.IsTerminal())
	assert.True(t, PaymentStatusRefunded.IsTerminal())
	assert.False(t, PaymentStatusInEscrow.IsTerminal())
}

func TestJobStatus_Transitions(t *testing.T) {
	assert.True(t, JobStatusOpen.CanTransitionTo(JobStatusInProgress))
	assert.True(t, JobStatusOpen.CanTransitionTo(JobStatusCancelled))
	assert.True(t, JobStatusInProgress.CanTransitionTo(JobStatusCompleted))
	assert.False(t, JobStatusOpen.CanTransitionTo(JobStatusCompleted))
	assert.False(t, JobStatusCompleted.CanTransitionTo(JobStatusOpen))
	assert.False(t, JobStatusCancelled.CanTransitionTo(JobStatusOpen))
}

func TestApplicationStatus_OnlyPendingMoves(t *testing.T) {
	for _, next := range []ApplicationStatus{ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn} {
		assert.True(t, ApplicationStatusPending.CanTransitionTo(next))
		assert.False(t, ApplicationStatusAccepted.CanTransitionTo(next))
		assert.False(t, ApplicationStatusWithdrawn.CanTransitionTo(next))
	}
}

func TestProjectStatus_Transitions(t *testing.T) {
	assert.True(t, ProjectStatusActive.CanTransitionTo(ProjectStatusCompleted))
	assert.True(t, ProjectStatusActive.CanTransitionTo(ProjectStatusCancelled))
	assert.False(t, ProjectStatusCompleted.CanTransitionTo(ProjectStatusActive))
}
