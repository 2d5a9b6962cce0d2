// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/crewforge/crewforge/ent/agent"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/event"
	"github.com/crewforge/crewforge/ent/schema"
	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescAssignedAt is the schema descriptor for assigned_at field.
	agentDescAssignedAt := agentFields[6].Descriptor()
	// agent.DefaultAssignedAt holds the default value on creation for the assigned_at field.
	agent.DefaultAssignedAt = agentDescAssignedAt.Default.(func() time.Time)
	escalationFields := schema.Escalation{}.Fields()
	_ = escalationFields
	// escalationDescSeverity is the schema descriptor for severity field.
	escalationDescSeverity := escalationFields[5].Descriptor()
	// escalation.DefaultSeverity holds the default value on creation for the severity field.
	escalation.DefaultSeverity = escalationDescSeverity.Default.(string)
	// escalationDescCanContinueWithout is the schema descriptor for can_continue_without field.
	escalationDescCanContinueWithout := escalationFields[8].Descriptor()
	// escalation.DefaultCanContinueWithout holds the default value on creation for the can_continue_without field.
	escalation.DefaultCanContinueWithout = escalationDescCanContinueWithout.Default.(bool)
	// escalationDescCreatedAt is the schema descriptor for created_at field.
	escalationDescCreatedAt := escalationFields[11].Descriptor()
	// escalation.DefaultCreatedAt holds the default value on creation for the created_at field.
	escalation.DefaultCreatedAt = escalationDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescTimestamp is the schema descriptor for timestamp field.
	eventDescTimestamp := eventFields[2].Descriptor()
	// event.DefaultTimestamp holds the default value on creation for the timestamp field.
	event.DefaultTimestamp = eventDescTimestamp.Default.(func() time.Time)
	swarmFields := schema.Swarm{}.Fields()
	_ = swarmFields
	// swarmDescNumAgents is the schema descriptor for num_agents field.
	swarmDescNumAgents := swarmFields[3].Descriptor()
	// swarm.DefaultNumAgents holds the default value on creation for the num_agents field.
	swarm.DefaultNumAgents = swarmDescNumAgents.Default.(int)
	// swarmDescCreatedAt is the schema descriptor for created_at field.
	swarmDescCreatedAt := swarmFields[6].Descriptor()
	// swarm.DefaultCreatedAt holds the default value on creation for the created_at field.
	swarm.DefaultCreatedAt = swarmDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[6].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// taskDescAttempts is the schema descriptor for attempts field.
	taskDescAttempts := taskFields[10].Descriptor()
	// task.DefaultAttempts holds the default value on creation for the attempts field.
	task.DefaultAttempts = taskDescAttempts.Default.(int)
	// taskDescMaxAttempts is the schema descriptor for max_attempts field.
	taskDescMaxAttempts := taskFields[11].Descriptor()
	// task.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	task.DefaultMaxAttempts = taskDescMaxAttempts.Default.(int)
	// taskDescMilestone is the schema descriptor for milestone field.
	taskDescMilestone := taskFields[13].Descriptor()
	// task.DefaultMilestone holds the default value on creation for the milestone field.
	task.DefaultMilestone = taskDescMilestone.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[16].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[17].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
