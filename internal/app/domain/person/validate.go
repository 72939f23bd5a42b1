package person

import "strings"

// Problems returns a field→message map for the identity block, empty when
// the fields are acceptable. Uniqueness of phone and identification is
// checked by the owning service against its store, not here.
func (f Fields) Problems() map[string]string {
	problems := make(map[string]string)
	if strings.TrimSpace(f.Name) == "" {
		problems["name"] = "name is required"
	}
	if strings.TrimSpace(f.Email) == "" {
		problems["email"] = "email is required"
	} else if !strings.Contains(f.Email, "@") {
		problems["email"] = "email must be a valid address"
	}
	phone := strings.TrimSpace(f.Phone)
	switch {
	case phone == "":
		problems["phone"] = "phone is required"
	case !allDigits(phone) || len(phone) != 10:
		problems["phone"] = "phone must be 10 digits"
	case allSameDigits(phone):
		problems["phone"] = "phone cannot have all identical digits"
	}
	if strings.TrimSpace(f.Identification) == "" {
		problems["identification"] = "identification is required"
	}
	return problems
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
