package directory

var builtin = []string{
	"alice.johnson@example.com",
	"bob.smith@example.com",
	"carol.white@example.org",
	"david.brown@example.net",
	"emma.davis@example.com",
	"frank.miller@example.org",
	"grace.wilson@example.com",
	"henry.moore@example.net",
	"isabella.taylor@example.com",
	"jack.anderson@example.org",
	"kate.thomas@example.com",
	"liam.jackson@example.net",
	"mia.martin@example.com",
	"noah.lee@example.org",
	"olivia.perez@example.com",
	"paul.thompson@example.net",
	"quinn.harris@example.com",
	"ruby.clark@example.org",
	"sam.lewis@example.com",
	"tina.robinson@example.net",
	"support@example.com",
	"billing@example.org",
	"team+announcements@example.com",
	"no-reply@example.net",
}
