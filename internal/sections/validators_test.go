package sections

import "testing"

func TestValidByTable(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		text string
		want bool
	}{
		{name: "summary long enough", id: Summary, text: "Seasoned backend engineer with a decade of experience.", want: true},
		{name: "summary too short", id: Summary, text: "Backend engineer.", want: false},
		{name: "summary whitespace only", id: Summary, text: "   ", want: false},

		{name: "skills six technical tokens", id: Skills, text: "python, sql, java, react, node, docker", want: true},
		{name: "skills no technical tokens", id: Skills, text: "a, b, c, d, e, f", want: false},
		{name: "skills too few tokens", id: Skills, text: "python, sql, java", want: false},
		{name: "skills pipe and newline separators", id: Skills, text: "Python|SQL\nReact|cooking|writing|chess", want: true},

		{name: "experience long enough", id: Experience, text: "Built billing services at Acme Corp for 4 years", want: true},
		{name: "experience too short", id: Experience, text: "Acme Corp", want: false},

		{name: "projects pipe delimited", id: Projects, text: "Payment gateway | Chat server", want: true},
		{name: "projects markdown list", id: Projects, text: "- Payment gateway\n- Chat server", want: true},
		{name: "projects single item", id: Projects, text: "Payment gateway", want: false},

		{name: "certifications pipe", id: Certifications, text: "AWS SAA | CKA", want: true},
		{name: "certifications no pipe", id: Certifications, text: "AWS SAA, CKA", want: false},

		{name: "achievements percentage", id: Achievements, text: "Cut p99 latency by 40%", want: true},
		{name: "achievements bare integer", id: Achievements, text: "Handled 500 requests per second", want: true},
		{name: "achievements verb", id: Achievements, text: "Launched the partner portal", want: true},
		{name: "achievements nothing quantified", id: Achievements, text: "Worked on the portal", want: false},

		{name: "traits four items", id: Traits, text: "curious, rigorous, calm, direct", want: true},
		{name: "traits three items", id: Traits, text: "curious, rigorous, calm", want: false},

		{name: "unknown id non-empty", id: ID("hobbies"), text: "chess", want: true},
		{name: "unknown id empty", id: ID("hobbies"), text: "  ", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.id, tt.text); got != tt.want {
				t.Fatalf("Valid(%q, %q) = %v, want %v", tt.id, tt.text, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if id, ok := Parse("Summary"); !ok || id != Summary {
		t.Fatalf("Parse(Summary) = %q, %v", id, ok)
	}
	if id, ok := Parse("  SKILLS "); !ok || id != Skills {
		t.Fatalf("Parse(SKILLS) = %q, %v", id, ok)
	}
	if _, ok := Parse("hobbies"); ok {
		t.Fatal("Parse(hobbies) unexpectedly ok")
	}
}

func TestAllOrderIsStable(t *testing.T) {
	want := []ID{Summary, Skills, Experience, Projects, Certifications, Achievements, Traits}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("All() length = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
