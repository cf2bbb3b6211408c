// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/confscout/scout/ent/startup"
)

// StartupCreate is the builder for creating a Startup entity.
type StartupCreate struct {
	config
	mutation *StartupMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *StartupCreate) SetName(v string) *StartupCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StartupCreate) SetDescription(v string) *StartupCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetShortDescription sets the "short_description" field.
func (_c *StartupCreate) SetShortDescription(v string) *StartupCreate {
	_c.mutation.SetShortDescription(v)
	return _c
}

// SetNillableShortDescription sets the "short_description" field if the given value is not nil.
func (_c *StartupCreate) SetNillableShortDescription(v *string) *StartupCreate {
	if v != nil {
		_c.SetShortDescription(*v)
	}
	return _c
}

// SetPrimaryIndustry sets the "primary_industry" field.
func (_c *StartupCreate) SetPrimaryIndustry(v string) *StartupCreate {
	_c.mutation.SetPrimaryIndustry(v)
	return _c
}

// SetSecondaryIndustries sets the "secondary_industries" field.
func (_c *StartupCreate) SetSecondaryIndustries(v []string) *StartupCreate {
	_c.mutation.SetSecondaryIndustries(v)
	return _c
}

// SetBusinessTypes sets the "business_types" field.
func (_c *StartupCreate) SetBusinessTypes(v []string) *StartupCreate {
	_c.mutation.SetBusinessTypes(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *StartupCreate) SetStage(v startup.Stage) *StartupCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *StartupCreate) SetNillableStage(v *startup.Stage) *StartupCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetTotalFundingUsdMillions sets the "total_funding_usd_millions" field.
func (_c *StartupCreate) SetTotalFundingUsdMillions(v float64) *StartupCreate {
	_c.mutation.SetTotalFundingUsdMillions(v)
	return _c
}

// SetNillableTotalFundingUsdMillions sets the "total_funding_usd_millions" field if the given value is not nil.
func (_c *StartupCreate) SetNillableTotalFundingUsdMillions(v *float64) *StartupCreate {
	if v != nil {
		_c.SetTotalFundingUsdMillions(*v)
	}
	return _c
}

// SetLastFundingDate sets the "last_funding_date" field.
func (_c *StartupCreate) SetLastFundingDate(v time.Time) *StartupCreate {
	_c.mutation.SetLastFundingDate(v)
	return _c
}

// SetNillableLastFundingDate sets the "last_funding_date" field if the given value is not nil.
func (_c *StartupCreate) SetNillableLastFundingDate(v *time.Time) *StartupCreate {
	if v != nil {
		_c.SetLastFundingDate(*v)
	}
	return _c
}

// SetEmployees sets the "employees" field.
func (_c *StartupCreate) SetEmployees(v string) *StartupCreate {
	_c.mutation.SetEmployees(v)
	return _c
}

// SetNillableEmployees sets the "employees" field if the given value is not nil.
func (_c *StartupCreate) SetNillableEmployees(v *string) *StartupCreate {
	if v != nil {
		_c.SetEmployees(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *StartupCreate) SetCountry(v string) *StartupCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *StartupCreate) SetNillableCountry(v *string) *StartupCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *StartupCreate) SetCity(v string) *StartupCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *StartupCreate) SetNillableCity(v *string) *StartupCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *StartupCreate) SetWebsite(v string) *StartupCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *StartupCreate) SetNillableWebsite(v *string) *StartupCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetLogoURL sets the "logo_url" field.
func (_c *StartupCreate) SetLogoURL(v string) *StartupCreate {
	_c.mutation.SetLogoURL(v)
	return _c
}

// SetNillableLogoURL sets the "logo_url" field if the given value is not nil.
func (_c *StartupCreate) SetNillableLogoURL(v *string) *StartupCreate {
	if v != nil {
		_c.SetLogoURL(*v)
	}
	return _c
}

// SetTopics sets the "topics" field.
func (_c *StartupCreate) SetTopics(v []string) *StartupCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetTechStack sets the "tech_stack" field.
func (_c *StartupCreate) SetTechStack(v []string) *StartupCreate {
	_c.mutation.SetTechStack(v)
	return _c
}

// SetMaturityScore sets the "maturity_score" field.
func (_c *StartupCreate) SetMaturityScore(v int) *StartupCreate {
	_c.mutation.SetMaturityScore(v)
	return _c
}

// SetNillableMaturityScore sets the "maturity_score" field if the given value is not nil.
func (_c *StartupCreate) SetNillableMaturityScore(v *int) *StartupCreate {
	if v != nil {
		_c.SetMaturityScore(*v)
	}
	return _c
}

// SetEnrichment sets the "enrichment" field.
func (_c *StartupCreate) SetEnrichment(v map[string]interface{}) *StartupCreate {
	_c.mutation.SetEnrichment(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StartupCreate) SetCreatedAt(v time.Time) *StartupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StartupCreate) SetNillableCreatedAt(v *time.Time) *StartupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StartupCreate) SetID(v int64) *StartupCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StartupMutation object of the builder.
func (_c *StartupCreate) Mutation() *StartupMutation {
	return _c.mutation
}

// Save creates the Startup in the database.
func (_c *StartupCreate) Save(ctx context.Context) (*Startup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StartupCreate) SaveX(ctx context.Context) *Startup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StartupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StartupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StartupCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := startup.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := startup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StartupCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Startup.name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Startup.description"`)}
	}
	if _, ok := _c.mutation.PrimaryIndustry(); !ok {
		return &ValidationError{Name: "primary_industry", err: errors.New(`ent: missing required field "Startup.primary_industry"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Startup.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := startup.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Startup.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Startup.created_at"`)}
	}
	return nil
}

func (_c *StartupCreate) sqlSave(ctx context.Context) (*Startup, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StartupCreate) createSpec() (*Startup, *sqlgraph.CreateSpec) {
	var (
		_node = &Startup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(startup.Table, sqlgraph.NewFieldSpec(startup.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(startup.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(startup.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ShortDescription(); ok {
		_spec.SetField(startup.FieldShortDescription, field.TypeString, value)
		_node.ShortDescription = value
	}
	if value, ok := _c.mutation.PrimaryIndustry(); ok {
		_spec.SetField(startup.FieldPrimaryIndustry, field.TypeString, value)
		_node.PrimaryIndustry = value
	}
	if value, ok := _c.mutation.SecondaryIndustries(); ok {
		_spec.SetField(startup.FieldSecondaryIndustries, field.TypeJSON, value)
		_node.SecondaryIndustries = value
	}
	if value, ok := _c.mutation.BusinessTypes(); ok {
		_spec.SetField(startup.FieldBusinessTypes, field.TypeJSON, value)
		_node.BusinessTypes = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(startup.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.TotalFundingUsdMillions(); ok {
		_spec.SetField(startup.FieldTotalFundingUsdMillions, field.TypeFloat64, value)
		_node.TotalFundingUsdMillions = &value
	}
	if value, ok := _c.mutation.LastFundingDate(); ok {
		_spec.SetField(startup.FieldLastFundingDate, field.TypeTime, value)
		_node.LastFundingDate = &value
	}
	if value, ok := _c.mutation.Employees(); ok {
		_spec.SetField(startup.FieldEmployees, field.TypeString, value)
		_node.Employees = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(startup.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(startup.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(startup.FieldWebsite, field.TypeString, value)
		_node.Website = &value
	}
	if value, ok := _c.mutation.LogoURL(); ok {
		_spec.SetField(startup.FieldLogoURL, field.TypeString, value)
		_node.LogoURL = &value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(startup.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.TechStack(); ok {
		_spec.SetField(startup.FieldTechStack, field.TypeJSON, value)
		_node.TechStack = value
	}
	if value, ok := _c.mutation.MaturityScore(); ok {
		_spec.SetField(startup.FieldMaturityScore, field.TypeInt, value)
		_node.MaturityScore = &value
	}
	if value, ok := _c.mutation.Enrichment(); ok {
		_spec.SetField(startup.FieldEnrichment, field.TypeJSON, value)
		_node.Enrichment = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(startup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StartupCreateBulk is the builder for creating many Startup entities in bulk.
type StartupCreateBulk struct {
	config
	err      error
	builders []*StartupCreate
}

// Save creates the Startup entities in the database.
func (_c *StartupCreateBulk) Save(ctx context.Context) ([]*Startup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Startup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StartupMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StartupCreateBulk) SaveX(ctx context.Context) []*Startup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StartupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StartupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
