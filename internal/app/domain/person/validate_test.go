package person

import "testing"

func valid() Fields {
	return Fields{
		Name:           "Ana Torres",
		Email:          "ana@example.com",
		Phone:          "3001234567",
		Identification: "CC-100",
	}
}

func TestProblemsAcceptsValidFields(t *testing.T) {
	if problems := valid().Problems(); len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
}

func TestProblemsPhone(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		want  bool
	}{
		{"ten digits", "3001234567", false},
		{"too short", "12345", true},
		{"letters", "30012345ab", true},
		{"all identical digits", "1111111111", true},
		{"empty", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := valid()
			f.Phone = tc.phone
			_, flagged := f.Problems()["phone"]
			if flagged != tc.want {
				t.Fatalf("phone %q flagged = %v, want %v", tc.phone, flagged, tc.want)
			}
		})
	}
}

func TestProblemsEmail(t *testing.T) {
	f := valid()
	f.Email = "not-an-address"
	if _, flagged := f.Problems()["email"]; !flagged {
		t.Fatal("email without @ not flagged")
	}
	f.Email = ""
	if f.Problems()["email"] != "email is required" {
		t.Fatal("empty email not flagged as required")
	}
}

func TestProblemsCollectsAllFields(t *testing.T) {
	problems := Fields{}.Problems()
	for _, field := range []string{"name", "email", "phone", "identification"} {
		if _, ok := problems[field]; !ok {
			t.Fatalf("field %s missing from problems: %v", field, problems)
		}
	}
}
