// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/confscout/scout/ent/startup"
)

// Startup is the model entity for the Startup schema.
type Startup struct {
	config `json:"-"`
	// ID of the ent.
	// Stable identifier assigned by the ingestion pipeline
	ID int64 `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Long-form description (full-text searchable)
	Description string `json:"description,omitempty"`
	// Derived from description when the source omits it
	ShortDescription string `json:"short_description,omitempty"`
	// PrimaryIndustry holds the value of the "primary_industry" field.
	PrimaryIndustry string `json:"primary_industry,omitempty"`
	// SecondaryIndustries holds the value of the "secondary_industries" field.
	SecondaryIndustries []string `json:"secondary_industries,omitempty"`
	// e.g. b2b, b2c, b2g
	BusinessTypes []string `json:"business_types,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage startup.Stage `json:"stage,omitempty"`
	// TotalFundingUsdMillions holds the value of the "total_funding_usd_millions" field.
	TotalFundingUsdMillions *float64 `json:"total_funding_usd_millions,omitempty"`
	// LastFundingDate holds the value of the "last_funding_date" field.
	LastFundingDate *time.Time `json:"last_funding_date,omitempty"`
	// Range string, e.g. '11-25'
	Employees string `json:"employees,omitempty"`
	// Country holds the value of the "country" field.
	Country string `json:"country,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// Website holds the value of the "website" field.
	Website *string `json:"website,omitempty"`
	// LogoURL holds the value of the "logo_url" field.
	LogoURL *string `json:"logo_url,omitempty"`
	// Topics holds the value of the "topics" field.
	Topics []string `json:"topics,omitempty"`
	// TechStack holds the value of the "tech_stack" field.
	TechStack []string `json:"tech_stack,omitempty"`
	// 0-100, set by enrichment
	MaturityScore *int `json:"maturity_score,omitempty"`
	// Free-form enrichment payload: emails, phones, social links, team
	Enrichment map[string]interface{} `json:"enrichment,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Startup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case startup.FieldSecondaryIndustries, startup.FieldBusinessTypes, startup.FieldTopics, startup.FieldTechStack, startup.FieldEnrichment:
			values[i] = new([]byte)
		case startup.FieldTotalFundingUsdMillions:
			values[i] = new(sql.NullFloat64)
		case startup.FieldID, startup.FieldMaturityScore:
			values[i] = new(sql.NullInt64)
		case startup.FieldName, startup.FieldDescription, startup.FieldShortDescription, startup.FieldPrimaryIndustry, startup.FieldStage, startup.FieldEmployees, startup.FieldCountry, startup.FieldCity, startup.FieldWebsite, startup.FieldLogoURL:
			values[i] = new(sql.NullString)
		case startup.FieldLastFundingDate, startup.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Startup fields.
func (_m *Startup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case startup.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case startup.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case startup.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case startup.FieldShortDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field short_description", values[i])
			} else if value.Valid {
				_m.ShortDescription = value.String
			}
		case startup.FieldPrimaryIndustry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_industry", values[i])
			} else if value.Valid {
				_m.PrimaryIndustry = value.String
			}
		case startup.FieldSecondaryIndustries:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_industries", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SecondaryIndustries); err != nil {
					return fmt.Errorf("unmarshal field secondary_industries: %w", err)
				}
			}
		case startup.FieldBusinessTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field business_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BusinessTypes); err != nil {
					return fmt.Errorf("unmarshal field business_types: %w", err)
				}
			}
		case startup.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = startup.Stage(value.String)
			}
		case startup.FieldTotalFundingUsdMillions:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_funding_usd_millions", values[i])
			} else if value.Valid {
				_m.TotalFundingUsdMillions = new(float64)
				*_m.TotalFundingUsdMillions = value.Float64
			}
		case startup.FieldLastFundingDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_funding_date", values[i])
			} else if value.Valid {
				_m.LastFundingDate = new(time.Time)
				*_m.LastFundingDate = value.Time
			}
		case startup.FieldEmployees:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employees", values[i])
			} else if value.Valid {
				_m.Employees = value.String
			}
		case startup.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = value.String
			}
		case startup.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case startup.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = new(string)
				*_m.Website = value.String
			}
		case startup.FieldLogoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logo_url", values[i])
			} else if value.Valid {
				_m.LogoURL = new(string)
				*_m.LogoURL = value.String
			}
		case startup.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case startup.FieldTechStack:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tech_stack", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TechStack); err != nil {
					return fmt.Errorf("unmarshal field tech_stack: %w", err)
				}
			}
		case startup.FieldMaturityScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field maturity_score", values[i])
			} else if value.Valid {
				_m.MaturityScore = new(int)
				*_m.MaturityScore = int(value.Int64)
			}
		case startup.FieldEnrichment:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field enrichment", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Enrichment); err != nil {
					return fmt.Errorf("unmarshal field enrichment: %w", err)
				}
			}
		case startup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Startup.
// This includes values selected through modifiers, order, etc.
func (_m *Startup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Startup.
// Note that you need to call Startup.Unwrap() before calling this method if this Startup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Startup) Update() *StartupUpdateOne {
	return NewStartupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Startup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Startup) Unwrap() *Startup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Startup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Startup) String() string {
	var builder strings.Builder
	builder.WriteString("Startup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("short_description=")
	builder.WriteString(_m.ShortDescription)
	builder.WriteString(", ")
	builder.WriteString("primary_industry=")
	builder.WriteString(_m.PrimaryIndustry)
	builder.WriteString(", ")
	builder.WriteString("secondary_industries=")
	builder.WriteString(fmt.Sprintf("%v", _m.SecondaryIndustries))
	builder.WriteString(", ")
	builder.WriteString("business_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessTypes))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	if v := _m.TotalFundingUsdMillions; v != nil {
		builder.WriteString("total_funding_usd_millions=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastFundingDate; v != nil {
		builder.WriteString("last_funding_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("employees=")
	builder.WriteString(_m.Employees)
	builder.WriteString(", ")
	builder.WriteString("country=")
	builder.WriteString(_m.Country)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	if v := _m.Website; v != nil {
		builder.WriteString("website=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LogoURL; v != nil {
		builder.WriteString("logo_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("tech_stack=")
	builder.WriteString(fmt.Sprintf("%v", _m.TechStack))
	builder.WriteString(", ")
	if v := _m.MaturityScore; v != nil {
		builder.WriteString("maturity_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("enrichment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enrichment))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Startups is a parsable slice of Startup.
type Startups []*Startup
