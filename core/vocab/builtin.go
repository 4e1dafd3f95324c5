package vocab

// Builtin creates a new registry holding the standard plugins, registered
// in this order: greek, functions, comparisons, logic, set, blackboard, misc.
func Builtin() *Registry {
	reg := NewRegistry()
	for _, b := range builtins {
		if err := reg.Register(b.name, b.plugin); err != nil {
			panic(err) // builtins are validated by tests
		}
	}
	return reg
}

var builtins = []struct {
	name   string
	plugin Plugin
}{
	{"greek", Plugin{
		Direct: []string{
			"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta", "Iota",
			"Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi", "Rho", "Sigma", "Tau",
			"Upsilon", "Phi", "Chi", "Psi", "Omega", "alpha", "beta", "gamma", "delta",
			"epsilon", "zeta", "eta", "theta", "iota", "kappa", "lambda", "mu", "nu", "xi",
			"omicron", "pi", "rho", "sigma", "tau", "upsilon", "phi", "chi", "psi", "omega",
		},
	}},
	{"functions", Plugin{
		Special: []string{
			"sin", "cos", "tan", "cot", "sec", "cosec", "arcsin", "arccos", "arctan",
			"arccot", "sinh", "cosh", "tanh", "coth", "arsinh", "arcosh", "artanh", "arcoth",
			"mod", "abs", "rnd", "rand", "min", "max", "gcd", "lcm", "exp", "sqrt", "ln",
			"lg", "log",
		},
	}},
	{"comparisons", Plugin{
		Map: map[string]string{
			"<=": " &le; ",
			">=": " &ge; ",
			"!=": " &ne; ",
			"<":  " &lt; ",
			">":  " &gt; ",
		},
	}},
	{"logic", Plugin{
		Direct: []string{"not", "exist"},
		Map: map[string]string{
			"&&":   " &and; ",
			"and":  " &and; ",
			"||":   " &or; ",
			"or":   " &or; ",
			"to":   " &rarr; ",
			"from": " &larr; ",
			"iff":  " &harr; ",
			"all":  "&#8704;",
			"|-":   " &#8870; ",
			"|=":   " &#8873; ",
		},
	}},
	{"set", Plugin{
		Direct: []string{"empty"},
		Map: map[string]string{
			"union":     " &#x22c3; ",
			"cup":       " &#x22c3; ",
			"intersect": " &#x22c2; ",
			"cap":       " &#x22c2; ",
			"in":        " &#8712; ",
			"notin":     " &#8713; ",
		},
	}},
	{"blackboard", Plugin{
		Map: map[string]string{
			"bbR": "&#8477;",
			"bbC": "&#8450;",
			"bbN": "&#8469;",
			"bbP": "&#8473;",
			"bbQ": "&#8474;",
			"bbZ": "&#8484;",
		},
	}},
	{"misc", Plugin{
		Direct: []string{"infin"},
		Map: map[string]string{
			"+-": " &plusmn; ",
			"'":  " &prime;",
			",":  ", ",
		},
	}},
}
