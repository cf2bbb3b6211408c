// Code generated by ent, DO NOT EDIT.

package startup

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the startup type in the database.
	Label = "startup"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldShortDescription holds the string denoting the short_description field in the database.
	FieldShortDescription = "short_description"
	// FieldPrimaryIndustry holds the string denoting the primary_industry field in the database.
	FieldPrimaryIndustry = "primary_industry"
	// FieldSecondaryIndustries holds the string denoting the secondary_industries field in the database.
	FieldSecondaryIndustries = "secondary_industries"
	// FieldBusinessTypes holds the string denoting the business_types field in the database.
	FieldBusinessTypes = "business_types"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldTotalFundingUsdMillions holds the string denoting the total_funding_usd_millions field in the database.
	FieldTotalFundingUsdMillions = "total_funding_usd_millions"
	// FieldLastFundingDate holds the string denoting the last_funding_date field in the database.
	FieldLastFundingDate = "last_funding_date"
	// FieldEmployees holds the string denoting the employees field in the database.
	FieldEmployees = "employees"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldLogoURL holds the string denoting the logo_url field in the database.
	FieldLogoURL = "logo_url"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldTechStack holds the string denoting the tech_stack field in the database.
	FieldTechStack = "tech_stack"
	// FieldMaturityScore holds the string denoting the maturity_score field in the database.
	FieldMaturityScore = "maturity_score"
	// FieldEnrichment holds the string denoting the enrichment field in the database.
	FieldEnrichment = "enrichment"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the startup in the database.
	Table = "startups"
)

// Columns holds all SQL columns for startup fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldShortDescription,
	FieldPrimaryIndustry,
	FieldSecondaryIndustries,
	FieldBusinessTypes,
	FieldStage,
	FieldTotalFundingUsdMillions,
	FieldLastFundingDate,
	FieldEmployees,
	FieldCountry,
	FieldCity,
	FieldWebsite,
	FieldLogoURL,
	FieldTopics,
	FieldTechStack,
	FieldMaturityScore,
	FieldEnrichment,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Stage defines the type for the "stage" enum field.
type Stage string

// StageUndisclosed is the default value of the Stage enum.
const DefaultStage = StageUndisclosed

// Stage values.
const (
	StagePreSeed     Stage = "pre_seed"
	StageSeed        Stage = "seed"
	StageSeriesA     Stage = "series_a"
	StageSeriesB     Stage = "series_b"
	StageSeriesC     Stage = "series_c"
	StageSeriesDPlus Stage = "series_d_plus"
	StageGrowth      Stage = "growth"
	StageUndisclosed Stage = "undisclosed"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StagePreSeed, StageSeed, StageSeriesA, StageSeriesB, StageSeriesC, StageSeriesDPlus, StageGrowth, StageUndisclosed:
		return nil
	default:
		return fmt.Errorf("startup: invalid enum value for stage field: %q", s)
	}
}

// OrderOption defines the ordering options for the Startup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByShortDescription orders the results by the short_description field.
func ByShortDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortDescription, opts...).ToFunc()
}

// ByPrimaryIndustry orders the results by the primary_industry field.
func ByPrimaryIndustry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryIndustry, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByTotalFundingUsdMillions orders the results by the total_funding_usd_millions field.
func ByTotalFundingUsdMillions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFundingUsdMillions, opts...).ToFunc()
}

// ByLastFundingDate orders the results by the last_funding_date field.
func ByLastFundingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFundingDate, opts...).ToFunc()
}

// ByEmployees orders the results by the employees field.
func ByEmployees(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployees, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByLogoURL orders the results by the logo_url field.
func ByLogoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogoURL, opts...).ToFunc()
}

// ByMaturityScore orders the results by the maturity_score field.
func ByMaturityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaturityScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
