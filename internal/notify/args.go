package notify

// ParseArgs builds a Request from command-line tokens, excluding the
// program name.
//
// -title, -message and -group take the following token as their value;
// -nosound takes none. A value flag in last position is ignored. Unknown
// tokens are skipped and the last occurrence of a flag wins. ParseArgs never
// fails: malformed input leaves the defaults in place.
func ParseArgs(args []string) Request {
	req := DefaultRequest()

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-title":
			i++
			if i < len(args) {
				req.Title = args[i]
			}
		case "-message":
			i++
			if i < len(args) {
				req.Message = args[i]
			}
		case "-group":
			i++
			if i < len(args) {
				req.Group = args[i]
			}
		case "-nosound":
			req.Sound = false
		}
	}

	return req
}
