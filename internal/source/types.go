package source

// Person mirrors one element of the record source's JSON array. Only the
// fields the directory shows are decoded; anything else is ignored.
type Person struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// Address is the subset of the nested address object we display.
type Address struct {
	City string `json:"city"`
}

// Company is the subset of the nested company object we display.
type Company struct {
	Name string `json:"name"`
}

// CompanyName returns the nested company name.
func (p Person) CompanyName() string {
	return p.Company.Name
}

// City returns the nested address city.
func (p Person) City() string {
	return p.Address.City
}
