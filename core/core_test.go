package core

import (
	"context"
)

type testLogger struct{}

func (l testLogger) Debug(string, ...interface{}) {}
func (l testLogger) Info(string, ...interface{})  {}
func (l testLogger) Warn(string, ...interface{})  {}
func (l testLogger) Error(string, ...interface{}) {}

func newRunContextForTest() *RunContext {
	state := NewSharedState()

	_ = state.Set(InputKey, map[string]any{"name": "GlowBoost Vitamin C Serum"})

	return NewRunContext(context.Background(), "run-x", AgentInfo{Name: "agent1", Type: "test"}, state, NewCallBudget(2), testLogger{})
}
