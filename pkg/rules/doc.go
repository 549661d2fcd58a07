/*
Package rules models declarative replacement rule sets for replacerc.

	            +-------------+
	            |   RuleSet   |
	            |  (Rules)    |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Declares ordered find/replace rules
- Parses rule sets from YAML and HCL
- Validates rules before compilation
- Scopes rules to streams via globs

🔄 Flow:
1. Reads a rule set from file or bytes
2. Parses format-specific syntax
3. Validates every rule (non-empty search text, well-formed globs)
4. Compiles the set into engine rules for pkg/replace

🤝 Interfaces:
- Parser: Format-specific parsing
- RuleSet: Ordered, validated rule access

📝 Design Philosophy:
Rule order is part of the contract: when two rules could complete a match
on the same input token, the rule declared first wins. Parsers therefore
preserve declaration order exactly, and nothing in this package ever
re-sorts a rule set.
*/
package rules
