// Code generated by ent, DO NOT EDIT.

package startup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/confscout/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldDescription, v))
}

// ShortDescription applies equality check predicate on the "short_description" field. It's identical to ShortDescriptionEQ.
func ShortDescription(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldShortDescription, v))
}

// PrimaryIndustry applies equality check predicate on the "primary_industry" field. It's identical to PrimaryIndustryEQ.
func PrimaryIndustry(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldPrimaryIndustry, v))
}

// TotalFundingUsdMillions applies equality check predicate on the "total_funding_usd_millions" field. It's identical to TotalFundingUsdMillionsEQ.
func TotalFundingUsdMillions(v float64) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldTotalFundingUsdMillions, v))
}

// LastFundingDate applies equality check predicate on the "last_funding_date" field. It's identical to LastFundingDateEQ.
func LastFundingDate(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldLastFundingDate, v))
}

// Employees applies equality check predicate on the "employees" field. It's identical to EmployeesEQ.
func Employees(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldEmployees, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldCountry, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldCity, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldWebsite, v))
}

// LogoURL applies equality check predicate on the "logo_url" field. It's identical to LogoURLEQ.
func LogoURL(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldLogoURL, v))
}

// MaturityScore applies equality check predicate on the "maturity_score" field. It's identical to MaturityScoreEQ.
func MaturityScore(v int) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldMaturityScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContainsFold(FieldDescription, v))
}

// ShortDescriptionEQ applies the EQ predicate on the "short_description" field.
func ShortDescriptionEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldShortDescription, v))
}

// ShortDescriptionNEQ applies the NEQ predicate on the "short_description" field.
func ShortDescriptionNEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldShortDescription, v))
}

// ShortDescriptionIn applies the In predicate on the "short_description" field.
func ShortDescriptionIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldShortDescription, vs...))
}

// ShortDescriptionNotIn applies the NotIn predicate on the "short_description" field.
func ShortDescriptionNotIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldShortDescription, vs...))
}

// ShortDescriptionGT applies the GT predicate on the "short_description" field.
func ShortDescriptionGT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldShortDescription, v))
}

// ShortDescriptionGTE applies the GTE predicate on the "short_description" field.
func ShortDescriptionGTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldShortDescription, v))
}

// ShortDescriptionLT applies the LT predicate on the "short_description" field.
func ShortDescriptionLT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldShortDescription, v))
}

// ShortDescriptionLTE applies the LTE predicate on the "short_description" field.
func ShortDescriptionLTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldShortDescription, v))
}

// ShortDescriptionContains applies the Contains predicate on the "short_description" field.
func ShortDescriptionContains(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContains(FieldShortDescription, v))
}

// ShortDescriptionHasPrefix applies the HasPrefix predicate on the "short_description" field.
func ShortDescriptionHasPrefix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasPrefix(FieldShortDescription, v))
}

// ShortDescriptionHasSuffix applies the HasSuffix predicate on the "short_description" field.
func ShortDescriptionHasSuffix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasSuffix(FieldShortDescription, v))
}

// ShortDescriptionIsNil applies the IsNil predicate on the "short_description" field.
func ShortDescriptionIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldShortDescription))
}

// ShortDescriptionNotNil applies the NotNil predicate on the "short_description" field.
func ShortDescriptionNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldShortDescription))
}

// ShortDescriptionEqualFold applies the EqualFold predicate on the "short_description" field.
func ShortDescriptionEqualFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEqualFold(FieldShortDescription, v))
}

// ShortDescriptionContainsFold applies the ContainsFold predicate on the "short_description" field.
func ShortDescriptionContainsFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContainsFold(FieldShortDescription, v))
}

// PrimaryIndustryEQ applies the EQ predicate on the "primary_industry" field.
func PrimaryIndustryEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldPrimaryIndustry, v))
}

// PrimaryIndustryNEQ applies the NEQ predicate on the "primary_industry" field.
func PrimaryIndustryNEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldPrimaryIndustry, v))
}

// PrimaryIndustryIn applies the In predicate on the "primary_industry" field.
func PrimaryIndustryIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldPrimaryIndustry, vs...))
}

// PrimaryIndustryNotIn applies the NotIn predicate on the "primary_industry" field.
func PrimaryIndustryNotIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldPrimaryIndustry, vs...))
}

// PrimaryIndustryGT applies the GT predicate on the "primary_industry" field.
func PrimaryIndustryGT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldPrimaryIndustry, v))
}

// PrimaryIndustryGTE applies the GTE predicate on the "primary_industry" field.
func PrimaryIndustryGTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldPrimaryIndustry, v))
}

// PrimaryIndustryLT applies the LT predicate on the "primary_industry" field.
func PrimaryIndustryLT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldPrimaryIndustry, v))
}

// PrimaryIndustryLTE applies the LTE predicate on the "primary_industry" field.
func PrimaryIndustryLTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldPrimaryIndustry, v))
}

// PrimaryIndustryContains applies the Contains predicate on the "primary_industry" field.
func PrimaryIndustryContains(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContains(FieldPrimaryIndustry, v))
}

// PrimaryIndustryHasPrefix applies the HasPrefix predicate on the "primary_industry" field.
func PrimaryIndustryHasPrefix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasPrefix(FieldPrimaryIndustry, v))
}

// PrimaryIndustryHasSuffix applies the HasSuffix predicate on the "primary_industry" field.
func PrimaryIndustryHasSuffix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasSuffix(FieldPrimaryIndustry, v))
}

// PrimaryIndustryEqualFold applies the EqualFold predicate on the "primary_industry" field.
func PrimaryIndustryEqualFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEqualFold(FieldPrimaryIndustry, v))
}

// PrimaryIndustryContainsFold applies the ContainsFold predicate on the "primary_industry" field.
func PrimaryIndustryContainsFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContainsFold(FieldPrimaryIndustry, v))
}

// SecondaryIndustriesIsNil applies the IsNil predicate on the "secondary_industries" field.
func SecondaryIndustriesIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldSecondaryIndustries))
}

// SecondaryIndustriesNotNil applies the NotNil predicate on the "secondary_industries" field.
func SecondaryIndustriesNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldSecondaryIndustries))
}

// BusinessTypesIsNil applies the IsNil predicate on the "business_types" field.
func BusinessTypesIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldBusinessTypes))
}

// BusinessTypesNotNil applies the NotNil predicate on the "business_types" field.
func BusinessTypesNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldBusinessTypes))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldStage, vs...))
}

// TotalFundingUsdMillionsEQ applies the EQ predicate on the "total_funding_usd_millions" field.
func TotalFundingUsdMillionsEQ(v float64) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldTotalFundingUsdMillions, v))
}

// TotalFundingUsdMillionsNEQ applies the NEQ predicate on the "total_funding_usd_millions" field.
func TotalFundingUsdMillionsNEQ(v float64) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldTotalFundingUsdMillions, v))
}

// TotalFundingUsdMillionsIn applies the In predicate on the "total_funding_usd_millions" field.
func TotalFundingUsdMillionsIn(vs ...float64) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldTotalFundingUsdMillions, vs...))
}

// TotalFundingUsdMillionsNotIn applies the NotIn predicate on the "total_funding_usd_millions" field.
func TotalFundingUsdMillionsNotIn(vs ...float64) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldTotalFundingUsdMillions, vs...))
}

// TotalFundingUsdMillionsGT applies the GT predicate on the "total_funding_usd_millions" field.
func TotalFundingUsdMillionsGT(v float64) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldTotalFundingUsdMillions, v))
}

// TotalFundingUsdMillionsGTE applies the GTE predicate on the "total_funding_usd_millions" field.
func TotalFundingUsdMillionsGTE(v float64) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldTotalFundingUsdMillions, v))
}

// TotalFundingUsdMillionsLT applies the LT predicate on the "total_funding_usd_millions" field.
func TotalFundingUsdMillionsLT(v float64) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldTotalFundingUsdMillions, v))
}

// TotalFundingUsdMillionsLTE applies the LTE predicate on the "total_funding_usd_millions" field.
func TotalFundingUsdMillionsLTE(v float64) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldTotalFundingUsdMillions, v))
}

// TotalFundingUsdMillionsIsNil applies the IsNil predicate on the "total_funding_usd_millions" field.
func TotalFundingUsdMillionsIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldTotalFundingUsdMillions))
}

// TotalFundingUsdMillionsNotNil applies the NotNil predicate on the "total_funding_usd_millions" field.
func TotalFundingUsdMillionsNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldTotalFundingUsdMillions))
}

// LastFundingDateEQ applies the EQ predicate on the "last_funding_date" field.
func LastFundingDateEQ(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldLastFundingDate, v))
}

// LastFundingDateNEQ applies the NEQ predicate on the "last_funding_date" field.
func LastFundingDateNEQ(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldLastFundingDate, v))
}

// LastFundingDateIn applies the In predicate on the "last_funding_date" field.
func LastFundingDateIn(vs ...time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldLastFundingDate, vs...))
}

// LastFundingDateNotIn applies the NotIn predicate on the "last_funding_date" field.
func LastFundingDateNotIn(vs ...time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldLastFundingDate, vs...))
}

// LastFundingDateGT applies the GT predicate on the "last_funding_date" field.
func LastFundingDateGT(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldLastFundingDate, v))
}

// LastFundingDateGTE applies the GTE predicate on the "last_funding_date" field.
func LastFundingDateGTE(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldLastFundingDate, v))
}

// LastFundingDateLT applies the LT predicate on the "last_funding_date" field.
func LastFundingDateLT(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldLastFundingDate, v))
}

// LastFundingDateLTE applies the LTE predicate on the "last_funding_date" field.
func LastFundingDateLTE(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldLastFundingDate, v))
}

// LastFundingDateIsNil applies the IsNil predicate on the "last_funding_date" field.
func LastFundingDateIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldLastFundingDate))
}

// LastFundingDateNotNil applies the NotNil predicate on the "last_funding_date" field.
func LastFundingDateNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldLastFundingDate))
}

// EmployeesEQ applies the EQ predicate on the "employees" field.
func EmployeesEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldEmployees, v))
}

// EmployeesNEQ applies the NEQ predicate on the "employees" field.
func EmployeesNEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldEmployees, v))
}

// EmployeesIn applies the In predicate on the "employees" field.
func EmployeesIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldEmployees, vs...))
}

// EmployeesNotIn applies the NotIn predicate on the "employees" field.
func EmployeesNotIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldEmployees, vs...))
}

// EmployeesGT applies the GT predicate on the "employees" field.
func EmployeesGT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldEmployees, v))
}

// EmployeesGTE applies the GTE predicate on the "employees" field.
func EmployeesGTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldEmployees, v))
}

// EmployeesLT applies the LT predicate on the "employees" field.
func EmployeesLT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldEmployees, v))
}

// EmployeesLTE applies the LTE predicate on the "employees" field.
func EmployeesLTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldEmployees, v))
}

// EmployeesContains applies the Contains predicate on the "employees" field.
func EmployeesContains(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContains(FieldEmployees, v))
}

// EmployeesHasPrefix applies the HasPrefix predicate on the "employees" field.
func EmployeesHasPrefix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasPrefix(FieldEmployees, v))
}

// EmployeesHasSuffix applies the HasSuffix predicate on the "employees" field.
func EmployeesHasSuffix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasSuffix(FieldEmployees, v))
}

// EmployeesIsNil applies the IsNil predicate on the "employees" field.
func EmployeesIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldEmployees))
}

// EmployeesNotNil applies the NotNil predicate on the "employees" field.
func EmployeesNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldEmployees))
}

// EmployeesEqualFold applies the EqualFold predicate on the "employees" field.
func EmployeesEqualFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEqualFold(FieldEmployees, v))
}

// EmployeesContainsFold applies the ContainsFold predicate on the "employees" field.
func EmployeesContainsFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContainsFold(FieldEmployees, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryIsNil applies the IsNil predicate on the "country" field.
func CountryIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldCountry))
}

// CountryNotNil applies the NotNil predicate on the "country" field.
func CountryNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldCountry))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContainsFold(FieldCountry, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContainsFold(FieldCity, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContainsFold(FieldWebsite, v))
}

// LogoURLEQ applies the EQ predicate on the "logo_url" field.
func LogoURLEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldLogoURL, v))
}

// LogoURLNEQ applies the NEQ predicate on the "logo_url" field.
func LogoURLNEQ(v string) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldLogoURL, v))
}

// LogoURLIn applies the In predicate on the "logo_url" field.
func LogoURLIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldLogoURL, vs...))
}

// LogoURLNotIn applies the NotIn predicate on the "logo_url" field.
func LogoURLNotIn(vs ...string) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldLogoURL, vs...))
}

// LogoURLGT applies the GT predicate on the "logo_url" field.
func LogoURLGT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldLogoURL, v))
}

// LogoURLGTE applies the GTE predicate on the "logo_url" field.
func LogoURLGTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldLogoURL, v))
}

// LogoURLLT applies the LT predicate on the "logo_url" field.
func LogoURLLT(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldLogoURL, v))
}

// LogoURLLTE applies the LTE predicate on the "logo_url" field.
func LogoURLLTE(v string) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldLogoURL, v))
}

// LogoURLContains applies the Contains predicate on the "logo_url" field.
func LogoURLContains(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContains(FieldLogoURL, v))
}

// LogoURLHasPrefix applies the HasPrefix predicate on the "logo_url" field.
func LogoURLHasPrefix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasPrefix(FieldLogoURL, v))
}

// LogoURLHasSuffix applies the HasSuffix predicate on the "logo_url" field.
func LogoURLHasSuffix(v string) predicate.Startup {
	return predicate.Startup(sql.FieldHasSuffix(FieldLogoURL, v))
}

// LogoURLIsNil applies the IsNil predicate on the "logo_url" field.
func LogoURLIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldLogoURL))
}

// LogoURLNotNil applies the NotNil predicate on the "logo_url" field.
func LogoURLNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldLogoURL))
}

// LogoURLEqualFold applies the EqualFold predicate on the "logo_url" field.
func LogoURLEqualFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldEqualFold(FieldLogoURL, v))
}

// LogoURLContainsFold applies the ContainsFold predicate on the "logo_url" field.
func LogoURLContainsFold(v string) predicate.Startup {
	return predicate.Startup(sql.FieldContainsFold(FieldLogoURL, v))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldTopics))
}

// TechStackIsNil applies the IsNil predicate on the "tech_stack" field.
func TechStackIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldTechStack))
}

// TechStackNotNil applies the NotNil predicate on the "tech_stack" field.
func TechStackNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldTechStack))
}

// MaturityScoreEQ applies the EQ predicate on the "maturity_score" field.
func MaturityScoreEQ(v int) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldMaturityScore, v))
}

// MaturityScoreNEQ applies the NEQ predicate on the "maturity_score" field.
func MaturityScoreNEQ(v int) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldMaturityScore, v))
}

// MaturityScoreIn applies the In predicate on the "maturity_score" field.
func MaturityScoreIn(vs ...int) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldMaturityScore, vs...))
}

// MaturityScoreNotIn applies the NotIn predicate on the "maturity_score" field.
func MaturityScoreNotIn(vs ...int) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldMaturityScore, vs...))
}

// MaturityScoreGT applies the GT predicate on the "maturity_score" field.
func MaturityScoreGT(v int) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldMaturityScore, v))
}

// MaturityScoreGTE applies the GTE predicate on the "maturity_score" field.
func MaturityScoreGTE(v int) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldMaturityScore, v))
}

// MaturityScoreLT applies the LT predicate on the "maturity_score" field.
func MaturityScoreLT(v int) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldMaturityScore, v))
}

// MaturityScoreLTE applies the LTE predicate on the "maturity_score" field.
func MaturityScoreLTE(v int) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldMaturityScore, v))
}

// MaturityScoreIsNil applies the IsNil predicate on the "maturity_score" field.
func MaturityScoreIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldMaturityScore))
}

// MaturityScoreNotNil applies the NotNil predicate on the "maturity_score" field.
func MaturityScoreNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldMaturityScore))
}

// EnrichmentIsNil applies the IsNil predicate on the "enrichment" field.
func EnrichmentIsNil() predicate.Startup {
	return predicate.Startup(sql.FieldIsNull(FieldEnrichment))
}

// EnrichmentNotNil applies the NotNil predicate on the "enrichment" field.
func EnrichmentNotNil() predicate.Startup {
	return predicate.Startup(sql.FieldNotNull(FieldEnrichment))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Startup {
	return predicate.Startup(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Startup) predicate.Startup {
	return predicate.Startup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Startup) predicate.Startup {
	return predicate.Startup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Startup) predicate.Startup {
	return predicate.Startup(sql.NotPredicates(p))
}
