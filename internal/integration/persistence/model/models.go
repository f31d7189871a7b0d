package model

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&MetricModel{},
		&PersonalValueModel{},
		&ExpectationModel{},
		&GoalDetailsModel{},
		&ExpectationMeasureModel{},
		&GoalRelevanceModel{},
		&ActionModel{},
		&MeasuredActionModel{},
		&ActionGoalContributionModel{},
		&TermModel{},
		&TermGoalAssignmentModel{},
	}
}
