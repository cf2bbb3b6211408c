// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/confscout/scout/ent/predicate"
	"github.com/confscout/scout/ent/startup"
)

// StartupUpdate is the builder for updating Startup entities.
type StartupUpdate struct {
	config
	hooks    []Hook
	mutation *StartupMutation
}

// Where appends a list predicates to the StartupUpdate builder.
func (_u *StartupUpdate) Where(ps ...predicate.Startup) *StartupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *StartupUpdate) SetName(v string) *StartupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableName(v *string) *StartupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StartupUpdate) SetDescription(v string) *StartupUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableDescription(v *string) *StartupUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetShortDescription sets the "short_description" field.
func (_u *StartupUpdate) SetShortDescription(v string) *StartupUpdate {
	_u.mutation.SetShortDescription(v)
	return _u
}

// SetNillableShortDescription sets the "short_description" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableShortDescription(v *string) *StartupUpdate {
	if v != nil {
		_u.SetShortDescription(*v)
	}
	return _u
}

// ClearShortDescription clears the value of the "short_description" field.
func (_u *StartupUpdate) ClearShortDescription() *StartupUpdate {
	_u.mutation.ClearShortDescription()
	return _u
}

// SetPrimaryIndustry sets the "primary_industry" field.
func (_u *StartupUpdate) SetPrimaryIndustry(v string) *StartupUpdate {
	_u.mutation.SetPrimaryIndustry(v)
	return _u
}

// SetNillablePrimaryIndustry sets the "primary_industry" field if the given value is not nil.
func (_u *StartupUpdate) SetNillablePrimaryIndustry(v *string) *StartupUpdate {
	if v != nil {
		_u.SetPrimaryIndustry(*v)
	}
	return _u
}

// SetSecondaryIndustries sets the "secondary_industries" field.
func (_u *StartupUpdate) SetSecondaryIndustries(v []string) *StartupUpdate {
	_u.mutation.SetSecondaryIndustries(v)
	return _u
}

// AppendSecondaryIndustries appends value to the "secondary_industries" field.
func (_u *StartupUpdate) AppendSecondaryIndustries(v []string) *StartupUpdate {
	_u.mutation.AppendSecondaryIndustries(v)
	return _u
}

// ClearSecondaryIndustries clears the value of the "secondary_industries" field.
func (_u *StartupUpdate) ClearSecondaryIndustries() *StartupUpdate {
	_u.mutation.ClearSecondaryIndustries()
	return _u
}

// SetBusinessTypes sets the "business_types" field.
func (_u *StartupUpdate) SetBusinessTypes(v []string) *StartupUpdate {
	_u.mutation.SetBusinessTypes(v)
	return _u
}

// AppendBusinessTypes appends value to the "business_types" field.
func (_u *StartupUpdate) AppendBusinessTypes(v []string) *StartupUpdate {
	_u.mutation.AppendBusinessTypes(v)
	return _u
}

// ClearBusinessTypes clears the value of the "business_types" field.
func (_u *StartupUpdate) ClearBusinessTypes() *StartupUpdate {
	_u.mutation.ClearBusinessTypes()
	return _u
}

// SetStage sets the "stage" field.
func (_u *StartupUpdate) SetStage(v startup.Stage) *StartupUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableStage(v *startup.Stage) *StartupUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetTotalFundingUsdMillions sets the "total_funding_usd_millions" field.
func (_u *StartupUpdate) SetTotalFundingUsdMillions(v float64) *StartupUpdate {
	_u.mutation.ResetTotalFundingUsdMillions()
	_u.mutation.SetTotalFundingUsdMillions(v)
	return _u
}

// SetNillableTotalFundingUsdMillions sets the "total_funding_usd_millions" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableTotalFundingUsdMillions(v *float64) *StartupUpdate {
	if v != nil {
		_u.SetTotalFundingUsdMillions(*v)
	}
	return _u
}

// AddTotalFundingUsdMillions adds value to the "total_funding_usd_millions" field.
func (_u *StartupUpdate) AddTotalFundingUsdMillions(v float64) *StartupUpdate {
	_u.mutation.AddTotalFundingUsdMillions(v)
	return _u
}

// ClearTotalFundingUsdMillions clears the value of the "total_funding_usd_millions" field.
func (_u *StartupUpdate) ClearTotalFundingUsdMillions() *StartupUpdate {
	_u.mutation.ClearTotalFundingUsdMillions()
	return _u
}

// SetLastFundingDate sets the "last_funding_date" field.
func (_u *StartupUpdate) SetLastFundingDate(v time.Time) *StartupUpdate {
	_u.mutation.SetLastFundingDate(v)
	return _u
}

// SetNillableLastFundingDate sets the "last_funding_date" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableLastFundingDate(v *time.Time) *StartupUpdate {
	if v != nil {
		_u.SetLastFundingDate(*v)
	}
	return _u
}

// ClearLastFundingDate clears the value of the "last_funding_date" field.
func (_u *StartupUpdate) ClearLastFundingDate() *StartupUpdate {
	_u.mutation.ClearLastFundingDate()
	return _u
}

// SetEmployees sets the "employees" field.
func (_u *StartupUpdate) SetEmployees(v string) *StartupUpdate {
	_u.mutation.SetEmployees(v)
	return _u
}

// SetNillableEmployees sets the "employees" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableEmployees(v *string) *StartupUpdate {
	if v != nil {
		_u.SetEmployees(*v)
	}
	return _u
}

// ClearEmployees clears the value of the "employees" field.
func (_u *StartupUpdate) ClearEmployees() *StartupUpdate {
	_u.mutation.ClearEmployees()
	return _u
}

// SetCountry sets the "country" field.
func (_u *StartupUpdate) SetCountry(v string) *StartupUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableCountry(v *string) *StartupUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *StartupUpdate) ClearCountry() *StartupUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetCity sets the "city" field.
func (_u *StartupUpdate) SetCity(v string) *StartupUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableCity(v *string) *StartupUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *StartupUpdate) ClearCity() *StartupUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *StartupUpdate) SetWebsite(v string) *StartupUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableWebsite(v *string) *StartupUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *StartupUpdate) ClearWebsite() *StartupUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetLogoURL sets the "logo_url" field.
func (_u *StartupUpdate) SetLogoURL(v string) *StartupUpdate {
	_u.mutation.SetLogoURL(v)
	return _u
}

// SetNillableLogoURL sets the "logo_url" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableLogoURL(v *string) *StartupUpdate {
	if v != nil {
		_u.SetLogoURL(*v)
	}
	return _u
}

// ClearLogoURL clears the value of the "logo_url" field.
func (_u *StartupUpdate) ClearLogoURL() *StartupUpdate {
	_u.mutation.ClearLogoURL()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *StartupUpdate) SetTopics(v []string) *StartupUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *StartupUpdate) AppendTopics(v []string) *StartupUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *StartupUpdate) ClearTopics() *StartupUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetTechStack sets the "tech_stack" field.
func (_u *StartupUpdate) SetTechStack(v []string) *StartupUpdate {
	_u.mutation.SetTechStack(v)
	return _u
}

// AppendTechStack appends value to the "tech_stack" field.
func (_u *StartupUpdate) AppendTechStack(v []string) *StartupUpdate {
	_u.mutation.AppendTechStack(v)
	return _u
}

// ClearTechStack clears the value of the "tech_stack" field.
func (_u *StartupUpdate) ClearTechStack() *StartupUpdate {
	_u.mutation.ClearTechStack()
	return _u
}

// SetMaturityScore sets the "maturity_score" field.
func (_u *StartupUpdate) SetMaturityScore(v int) *StartupUpdate {
	_u.mutation.ResetMaturityScore()
	_u.mutation.SetMaturityScore(v)
	return _u
}

// SetNillableMaturityScore sets the "maturity_score" field if the given value is not nil.
func (_u *StartupUpdate) SetNillableMaturityScore(v *int) *StartupUpdate {
	if v != nil {
		_u.SetMaturityScore(*v)
	}
	return _u
}

// AddMaturityScore adds value to the "maturity_score" field.
func (_u *StartupUpdate) AddMaturityScore(v int) *StartupUpdate {
	_u.mutation.AddMaturityScore(v)
	return _u
}

// ClearMaturityScore clears the value of the "maturity_score" field.
func (_u *StartupUpdate) ClearMaturityScore() *StartupUpdate {
	_u.mutation.ClearMaturityScore()
	return _u
}

// SetEnrichment sets the "enrichment" field.
func (_u *StartupUpdate) SetEnrichment(v map[string]interface{}) *StartupUpdate {
	_u.mutation.SetEnrichment(v)
	return _u
}

// ClearEnrichment clears the value of the "enrichment" field.
func (_u *StartupUpdate) ClearEnrichment() *StartupUpdate {
	_u.mutation.ClearEnrichment()
	return _u
}

// Mutation returns the StartupMutation object of the builder.
func (_u *StartupUpdate) Mutation() *StartupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StartupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StartupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StartupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StartupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StartupUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := startup.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Startup.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *StartupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(startup.Table, startup.Columns, sqlgraph.NewFieldSpec(startup.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(startup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(startup.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShortDescription(); ok {
		_spec.SetField(startup.FieldShortDescription, field.TypeString, value)
	}
	if _u.mutation.ShortDescriptionCleared() {
		_spec.ClearField(startup.FieldShortDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryIndustry(); ok {
		_spec.SetField(startup.FieldPrimaryIndustry, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondaryIndustries(); ok {
		_spec.SetField(startup.FieldSecondaryIndustries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondaryIndustries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, startup.FieldSecondaryIndustries, value)
		})
	}
	if _u.mutation.SecondaryIndustriesCleared() {
		_spec.ClearField(startup.FieldSecondaryIndustries, field.TypeJSON)
	}
	if value, ok := _u.mutation.BusinessTypes(); ok {
		_spec.SetField(startup.FieldBusinessTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBusinessTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, startup.FieldBusinessTypes, value)
		})
	}
	if _u.mutation.BusinessTypesCleared() {
		_spec.ClearField(startup.FieldBusinessTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(startup.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalFundingUsdMillions(); ok {
		_spec.SetField(startup.FieldTotalFundingUsdMillions, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalFundingUsdMillions(); ok {
		_spec.AddField(startup.FieldTotalFundingUsdMillions, field.TypeFloat64, value)
	}
	if _u.mutation.TotalFundingUsdMillionsCleared() {
		_spec.ClearField(startup.FieldTotalFundingUsdMillions, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastFundingDate(); ok {
		_spec.SetField(startup.FieldLastFundingDate, field.TypeTime, value)
	}
	if _u.mutation.LastFundingDateCleared() {
		_spec.ClearField(startup.FieldLastFundingDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Employees(); ok {
		_spec.SetField(startup.FieldEmployees, field.TypeString, value)
	}
	if _u.mutation.EmployeesCleared() {
		_spec.ClearField(startup.FieldEmployees, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(startup.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(startup.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(startup.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(startup.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(startup.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(startup.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.LogoURL(); ok {
		_spec.SetField(startup.FieldLogoURL, field.TypeString, value)
	}
	if _u.mutation.LogoURLCleared() {
		_spec.ClearField(startup.FieldLogoURL, field.TypeString)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(startup.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, startup.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(startup.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.TechStack(); ok {
		_spec.SetField(startup.FieldTechStack, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTechStack(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, startup.FieldTechStack, value)
		})
	}
	if _u.mutation.TechStackCleared() {
		_spec.ClearField(startup.FieldTechStack, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaturityScore(); ok {
		_spec.SetField(startup.FieldMaturityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaturityScore(); ok {
		_spec.AddField(startup.FieldMaturityScore, field.TypeInt, value)
	}
	if _u.mutation.MaturityScoreCleared() {
		_spec.ClearField(startup.FieldMaturityScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Enrichment(); ok {
		_spec.SetField(startup.FieldEnrichment, field.TypeJSON, value)
	}
	if _u.mutation.EnrichmentCleared() {
		_spec.ClearField(startup.FieldEnrichment, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{startup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StartupUpdateOne is the builder for updating a single Startup entity.
type StartupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StartupMutation
}

// SetName sets the "name" field.
func (_u *StartupUpdateOne) SetName(v string) *StartupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableName(v *string) *StartupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StartupUpdateOne) SetDescription(v string) *StartupUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableDescription(v *string) *StartupUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetShortDescription sets the "short_description" field.
func (_u *StartupUpdateOne) SetShortDescription(v string) *StartupUpdateOne {
	_u.mutation.SetShortDescription(v)
	return _u
}

// SetNillableShortDescription sets the "short_description" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableShortDescription(v *string) *StartupUpdateOne {
	if v != nil {
		_u.SetShortDescription(*v)
	}
	return _u
}

// ClearShortDescription clears the value of the "short_description" field.
func (_u *StartupUpdateOne) ClearShortDescription() *StartupUpdateOne {
	_u.mutation.ClearShortDescription()
	return _u
}

// SetPrimaryIndustry sets the "primary_industry" field.
func (_u *StartupUpdateOne) SetPrimaryIndustry(v string) *StartupUpdateOne {
	_u.mutation.SetPrimaryIndustry(v)
	return _u
}

// SetNillablePrimaryIndustry sets the "primary_industry" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillablePrimaryIndustry(v *string) *StartupUpdateOne {
	if v != nil {
		_u.SetPrimaryIndustry(*v)
	}
	return _u
}

// SetSecondaryIndustries sets the "secondary_industries" field.
func (_u *StartupUpdateOne) SetSecondaryIndustries(v []string) *StartupUpdateOne {
	_u.mutation.SetSecondaryIndustries(v)
	return _u
}

// AppendSecondaryIndustries appends value to the "secondary_industries" field.
func (_u *StartupUpdateOne) AppendSecondaryIndustries(v []string) *StartupUpdateOne {
	_u.mutation.AppendSecondaryIndustries(v)
	return _u
}

// ClearSecondaryIndustries clears the value of the "secondary_industries" field.
func (_u *StartupUpdateOne) ClearSecondaryIndustries() *StartupUpdateOne {
	_u.mutation.ClearSecondaryIndustries()
	return _u
}

// SetBusinessTypes sets the "business_types" field.
func (_u *StartupUpdateOne) SetBusinessTypes(v []string) *StartupUpdateOne {
	_u.mutation.SetBusinessTypes(v)
	return _u
}

// AppendBusinessTypes appends value to the "business_types" field.
func (_u *StartupUpdateOne) AppendBusinessTypes(v []string) *StartupUpdateOne {
	_u.mutation.AppendBusinessTypes(v)
	return _u
}

// ClearBusinessTypes clears the value of the "business_types" field.
func (_u *StartupUpdateOne) ClearBusinessTypes() *StartupUpdateOne {
	_u.mutation.ClearBusinessTypes()
	return _u
}

// SetStage sets the "stage" field.
func (_u *StartupUpdateOne) SetStage(v startup.Stage) *StartupUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableStage(v *startup.Stage) *StartupUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetTotalFundingUsdMillions sets the "total_funding_usd_millions" field.
func (_u *StartupUpdateOne) SetTotalFundingUsdMillions(v float64) *StartupUpdateOne {
	_u.mutation.ResetTotalFundingUsdMillions()
	_u.mutation.SetTotalFundingUsdMillions(v)
	return _u
}

// SetNillableTotalFundingUsdMillions sets the "total_funding_usd_millions" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableTotalFundingUsdMillions(v *float64) *StartupUpdateOne {
	if v != nil {
		_u.SetTotalFundingUsdMillions(*v)
	}
	return _u
}

// AddTotalFundingUsdMillions adds value to the "total_funding_usd_millions" field.
func (_u *StartupUpdateOne) AddTotalFundingUsdMillions(v float64) *StartupUpdateOne {
	_u.mutation.AddTotalFundingUsdMillions(v)
	return _u
}

// ClearTotalFundingUsdMillions clears the value of the "total_funding_usd_millions" field.
func (_u *StartupUpdateOne) ClearTotalFundingUsdMillions() *StartupUpdateOne {
	_u.mutation.ClearTotalFundingUsdMillions()
	return _u
}

// SetLastFundingDate sets the "last_funding_date" field.
func (_u *StartupUpdateOne) SetLastFundingDate(v time.Time) *StartupUpdateOne {
	_u.mutation.SetLastFundingDate(v)
	return _u
}

// SetNillableLastFundingDate sets the "last_funding_date" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableLastFundingDate(v *time.Time) *StartupUpdateOne {
	if v != nil {
		_u.SetLastFundingDate(*v)
	}
	return _u
}

// ClearLastFundingDate clears the value of the "last_funding_date" field.
func (_u *StartupUpdateOne) ClearLastFundingDate() *StartupUpdateOne {
	_u.mutation.ClearLastFundingDate()
	return _u
}

// SetEmployees sets the "employees" field.
func (_u *StartupUpdateOne) SetEmployees(v string) *StartupUpdateOne {
	_u.mutation.SetEmployees(v)
	return _u
}

// SetNillableEmployees sets the "employees" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableEmployees(v *string) *StartupUpdateOne {
	if v != nil {
		_u.SetEmployees(*v)
	}
	return _u
}

// ClearEmployees clears the value of the "employees" field.
func (_u *StartupUpdateOne) ClearEmployees() *StartupUpdateOne {
	_u.mutation.ClearEmployees()
	return _u
}

// SetCountry sets the "country" field.
func (_u *StartupUpdateOne) SetCountry(v string) *StartupUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableCountry(v *string) *StartupUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *StartupUpdateOne) ClearCountry() *StartupUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetCity sets the "city" field.
func (_u *StartupUpdateOne) SetCity(v string) *StartupUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableCity(v *string) *StartupUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *StartupUpdateOne) ClearCity() *StartupUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *StartupUpdateOne) SetWebsite(v string) *StartupUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableWebsite(v *string) *StartupUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *StartupUpdateOne) ClearWebsite() *StartupUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetLogoURL sets the "logo_url" field.
func (_u *StartupUpdateOne) SetLogoURL(v string) *StartupUpdateOne {
	_u.mutation.SetLogoURL(v)
	return _u
}

// SetNillableLogoURL sets the "logo_url" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableLogoURL(v *string) *StartupUpdateOne {
	if v != nil {
		_u.SetLogoURL(*v)
	}
	return _u
}

// ClearLogoURL clears the value of the "logo_url" field.
func (_u *StartupUpdateOne) ClearLogoURL() *StartupUpdateOne {
	_u.mutation.ClearLogoURL()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *StartupUpdateOne) SetTopics(v []string) *StartupUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *StartupUpdateOne) AppendTopics(v []string) *StartupUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *StartupUpdateOne) ClearTopics() *StartupUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetTechStack sets the "tech_stack" field.
func (_u *StartupUpdateOne) SetTechStack(v []string) *StartupUpdateOne {
	_u.mutation.SetTechStack(v)
	return _u
}

// AppendTechStack appends value to the "tech_stack" field.
func (_u *StartupUpdateOne) AppendTechStack(v []string) *StartupUpdateOne {
	_u.mutation.AppendTechStack(v)
	return _u
}

// ClearTechStack clears the value of the "tech_stack" field.
func (_u *StartupUpdateOne) ClearTechStack() *StartupUpdateOne {
	_u.mutation.ClearTechStack()
	return _u
}

// SetMaturityScore sets the "maturity_score" field.
func (_u *StartupUpdateOne) SetMaturityScore(v int) *StartupUpdateOne {
	_u.mutation.ResetMaturityScore()
	_u.mutation.SetMaturityScore(v)
	return _u
}

// SetNillableMaturityScore sets the "maturity_score" field if the given value is not nil.
func (_u *StartupUpdateOne) SetNillableMaturityScore(v *int) *StartupUpdateOne {
	if v != nil {
		_u.SetMaturityScore(*v)
	}
	return _u
}

// AddMaturityScore adds value to the "maturity_score" field.
func (_u *StartupUpdateOne) AddMaturityScore(v int) *StartupUpdateOne {
	_u.mutation.AddMaturityScore(v)
	return _u
}

// ClearMaturityScore clears the value of the "maturity_score" field.
func (_u *StartupUpdateOne) ClearMaturityScore() *StartupUpdateOne {
	_u.mutation.ClearMaturityScore()
	return _u
}

// SetEnrichment sets the "enrichment" field.
func (_u *StartupUpdateOne) SetEnrichment(v map[string]interface{}) *StartupUpdateOne {
	_u.mutation.SetEnrichment(v)
	return _u
}

// ClearEnrichment clears the value of the "enrichment" field.
func (_u *StartupUpdateOne) ClearEnrichment() *StartupUpdateOne {
	_u.mutation.ClearEnrichment()
	return _u
}

// Mutation returns the StartupMutation object of the builder.
func (_u *StartupUpdateOne) Mutation() *StartupMutation {
	return _u.mutation
}

// Where appends a list predicates to the StartupUpdate builder.
func (_u *StartupUpdateOne) Where(ps ...predicate.Startup) *StartupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StartupUpdateOne) Select(field string, fields ...string) *StartupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Startup entity.
func (_u *StartupUpdateOne) Save(ctx context.Context) (*Startup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StartupUpdateOne) SaveX(ctx context.Context) *Startup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StartupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StartupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StartupUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := startup.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Startup.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *StartupUpdateOne) sqlSave(ctx context.Context) (_node *Startup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(startup.Table, startup.Columns, sqlgraph.NewFieldSpec(startup.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Startup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, startup.FieldID)
		for _, f := range fields {
			if !startup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != startup.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(startup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(startup.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShortDescription(); ok {
		_spec.SetField(startup.FieldShortDescription, field.TypeString, value)
	}
	if _u.mutation.ShortDescriptionCleared() {
		_spec.ClearField(startup.FieldShortDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryIndustry(); ok {
		_spec.SetField(startup.FieldPrimaryIndustry, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondaryIndustries(); ok {
		_spec.SetField(startup.FieldSecondaryIndustries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondaryIndustries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, startup.FieldSecondaryIndustries, value)
		})
	}
	if _u.mutation.SecondaryIndustriesCleared() {
		_spec.ClearField(startup.FieldSecondaryIndustries, field.TypeJSON)
	}
	if value, ok := _u.mutation.BusinessTypes(); ok {
		_spec.SetField(startup.FieldBusinessTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBusinessTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, startup.FieldBusinessTypes, value)
		})
	}
	if _u.mutation.BusinessTypesCleared() {
		_spec.ClearField(startup.FieldBusinessTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(startup.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalFundingUsdMillions(); ok {
		_spec.SetField(startup.FieldTotalFundingUsdMillions, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalFundingUsdMillions(); ok {
		_spec.AddField(startup.FieldTotalFundingUsdMillions, field.TypeFloat64, value)
	}
	if _u.mutation.TotalFundingUsdMillionsCleared() {
		_spec.ClearField(startup.FieldTotalFundingUsdMillions, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastFundingDate(); ok {
		_spec.SetField(startup.FieldLastFundingDate, field.TypeTime, value)
	}
	if _u.mutation.LastFundingDateCleared() {
		_spec.ClearField(startup.FieldLastFundingDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Employees(); ok {
		_spec.SetField(startup.FieldEmployees, field.TypeString, value)
	}
	if _u.mutation.EmployeesCleared() {
		_spec.ClearField(startup.FieldEmployees, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(startup.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(startup.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(startup.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(startup.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(startup.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(startup.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.LogoURL(); ok {
		_spec.SetField(startup.FieldLogoURL, field.TypeString, value)
	}
	if _u.mutation.LogoURLCleared() {
		_spec.ClearField(startup.FieldLogoURL, field.TypeString)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(startup.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, startup.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(startup.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.TechStack(); ok {
		_spec.SetField(startup.FieldTechStack, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTechStack(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, startup.FieldTechStack, value)
		})
	}
	if _u.mutation.TechStackCleared() {
		_spec.ClearField(startup.FieldTechStack, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaturityScore(); ok {
		_spec.SetField(startup.FieldMaturityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaturityScore(); ok {
		_spec.AddField(startup.FieldMaturityScore, field.TypeInt, value)
	}
	if _u.mutation.MaturityScoreCleared() {
		_spec.ClearField(startup.FieldMaturityScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Enrichment(); ok {
		_spec.SetField(startup.FieldEnrichment, field.TypeJSON, value)
	}
	if _u.mutation.EnrichmentCleared() {
		_spec.ClearField(startup.FieldEnrichment, field.TypeJSON)
	}
	_node = &Startup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{startup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
