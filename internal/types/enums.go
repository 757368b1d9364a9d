package types

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

func (e EnergyLevel) Valid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

type GoalCategory string

const (
	CategoryCareer   GoalCategory = "career"
	CategoryFitness  GoalCategory = "fitness"
	CategoryLearning GoalCategory = "learning"
	CategoryFinance  GoalCategory = "finance"
	CategoryHealth   GoalCategory = "health"
	CategoryCreative GoalCategory = "creative"
	CategorySocial   GoalCategory = "social"
	CategoryOther    GoalCategory = "other"
)

func (c GoalCategory) Valid() bool {
	switch c {
	case CategoryCareer, CategoryFitness, CategoryLearning, CategoryFinance,
		CategoryHealth, CategoryCreative, CategorySocial, CategoryOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskPending     TaskStatus = "pending"
	TaskInProgress  TaskStatus = "in_progress"
	TaskCompleted   TaskStatus = "completed"
	TaskSkipped     TaskStatus = "skipped"
	TaskRescheduled TaskStatus = "rescheduled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskSkipped, TaskRescheduled:
		return true
	}
	return false
}

type HabitFrequency string

const (
	FrequencyDaily    HabitFrequency = "daily"
	FrequencyWeekly   HabitFrequency = "weekly"
	FrequencyWeekdays HabitFrequency = "weekdays"
	FrequencyCustom   HabitFrequency = "custom"
)

func (f HabitFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyWeekdays, FrequencyCustom:
		return true
	}
	return false
}
