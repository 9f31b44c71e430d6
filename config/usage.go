package config

// Usage is printed when the query token is -h or --help
const Usage = `mgrep - print lines containing a query

Usage:
  mgrep <query> [-i|--ignore-case | -ni|--no-ignore-case] [path]
  <command> | mgrep <query> [-i|--ignore-case | -ni|--no-ignore-case]

Arguments:
  query                 Text to look for. Matching is a plain substring test.
  path                  File to search. Any argument containing '/' or '\'
                        is taken as the path; without one, standard input
                        is read instead.

Options:
  -i,  --ignore-case     Ignore case when matching
  -ni, --no-ignore-case  Match case exactly (overrides -i and IGNORE_CASE)
  -h,  --help            Show this help

Environment:
  IGNORE_CASE            When defined (any value), ignore case unless a flag says otherwise
  MGREP_LOG_LEVEL        Log level on stderr: debug, info, warn, error (default: warn)
  NO_COLOR               Disable match highlighting
`
