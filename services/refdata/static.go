package refdata

import (
	"context"
	"fmt"
	"strings"

	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// StaticProvider serves reference data from in-process tables. The tables
// are the wizard's source of truth in local and test environments; deployed
// environments wrap it with the redis cache.
type StaticProvider struct{}

// NewStaticProvider creates a provider over the built-in tables.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Lookup returns the named ordered list.
func (s *StaticProvider) Lookup(_ context.Context, listName string) ([]types.ReferenceItem, error) {
	if strings.HasPrefix(listName, ListIdentificationType+"_") {
		country := strings.TrimPrefix(listName, ListIdentificationType+"_")
		if items, ok := idTypesByCountry[strings.ToUpper(country)]; ok {
			return items, nil
		}
		return defaultIDTypes, nil
	}

	if items, ok := lists[listName]; ok {
		return items, nil
	}
	return nil, fmt.Errorf("unknown reference list: %s", listName)
}

var lists = map[string][]types.ReferenceItem{
	ListCountries: {
		{Code: "US", Label: "United States"},
		{Code: "GB", Label: "United Kingdom"},
		{Code: "NG", Label: "Nigeria"},
		{Code: "KE", Label: "Kenya"},
		{Code: "GH", Label: "Ghana"},
		{Code: "ZA", Label: "South Africa"},
		{Code: "BR", Label: "Brazil"},
		{Code: "MX", Label: "Mexico"},
		{Code: "AR", Label: "Argentina"},
		{Code: "DE", Label: "Germany"},
		{Code: "FR", Label: "France"},
		{Code: "ES", Label: "Spain"},
		{Code: "PT", Label: "Portugal"},
		{Code: "IN", Label: "India"},
		{Code: "PH", Label: "Philippines"},
	},
	ListOccupations: {
		{Code: "accountant", Label: "Accountant"},
		{Code: "business_owner", Label: "Business Owner"},
		{Code: "civil_servant", Label: "Civil Servant"},
		{Code: "engineer", Label: "Engineer"},
		{Code: "farmer", Label: "Farmer"},
		{Code: "healthcare", Label: "Healthcare Professional"},
		{Code: "lawyer", Label: "Lawyer"},
		{Code: "retired", Label: "Retired"},
		{Code: "software_developer", Label: "Software Developer"},
		{Code: "student", Label: "Student"},
		{Code: "teacher", Label: "Teacher"},
		{Code: "trader", Label: "Trader"},
		{Code: "unemployed", Label: "Unemployed"},
		{Code: "other", Label: "Other"},
	},
	ListPurposes: {
		{Code: "savings", Label: "Savings"},
		{Code: "salary", Label: "Receiving salary"},
		{Code: "remittance", Label: "Sending or receiving remittances"},
		{Code: "trading", Label: "Trading"},
		{Code: "business_payments", Label: "Business payments"},
		{Code: "payroll", Label: "Payroll"},
		{Code: "treasury", Label: "Treasury management"},
		{Code: "other", Label: "Other"},
	},
	ListSourcesOfFunds: {
		{Code: "salary", Label: "Salary"},
		{Code: "business_income", Label: "Business income"},
		{Code: "investments", Label: "Investments"},
		{Code: "inheritance", Label: "Inheritance"},
		{Code: "savings", Label: "Savings"},
		{Code: "loan", Label: "Loan"},
		{Code: "other", Label: "Other"},
	},
	ListEntityTypes: {
		{Code: "llc", Label: "Limited Liability Company"},
		{Code: "corporation", Label: "Corporation"},
		{Code: "partnership", Label: "Partnership"},
		{Code: "sole_proprietorship", Label: "Sole Proprietorship"},
		{Code: "trust", Label: "Trust"},
		{Code: "cooperative", Label: "Cooperative"},
		{Code: "other", Label: "Other"},
	},
	ListHighRiskActivities: {
		{Code: "gambling", Label: "Gambling"},
		{Code: "adult_content", Label: "Adult content"},
		{Code: "weapons", Label: "Weapons"},
		{Code: "marijuana", Label: "Marijuana"},
		{Code: "money_services", Label: "Money services"},
		{Code: "none", Label: "None"},
	},
	ListEndorsements: {
		{Code: "base", Label: "Base payments"},
		{Code: "sepa", Label: "SEPA"},
		{Code: "ach", Label: "ACH"},
		{Code: "wire", Label: "Wire"},
		{Code: "spei", Label: "SPEI"},
	},
	ListIdentificationType: defaultIDTypes,
}

var defaultIDTypes = []types.ReferenceItem{
	{Code: "passport", Label: "Passport"},
	{Code: "drivers_license", Label: "Driver's License"},
	{Code: "national_id", Label: "National ID"},
}

var idTypesByCountry = map[string][]types.ReferenceItem{
	"US": {
		{Code: "passport", Label: "Passport"},
		{Code: "drivers_license", Label: "Driver's License"},
		{Code: "ssn", Label: "Social Security Number"},
	},
	"NG": {
		{Code: "passport", Label: "Passport"},
		{Code: "drivers_license", Label: "Driver's License"},
		{Code: "nin", Label: "National Identification Number"},
		{Code: "bvn", Label: "Bank Verification Number"},
	},
	"BR": {
		{Code: "passport", Label: "Passport"},
		{Code: "cpf", Label: "CPF"},
		{Code: "rg", Label: "Registro Geral"},
	},
	"KE": {
		{Code: "passport", Label: "Passport"},
		{Code: "national_id", Label: "National ID"},
		{Code: "alien_card", Label: "Alien Card"},
	},
}
