package flags

var (
	ConfigFile string
	LogLevel   string
	Format     string
	Pattern    string
	Input      string
	InputFile  string
	MinLength  int
	UpperCase  bool
	Top        int
)
