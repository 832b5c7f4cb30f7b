// Package canonical renders a transaction record into the exact byte string
// that gets signed.
//
// The payload is one "name:value" line per required field, in the fixed order
// address, commodity, commodity_amount, network, sc_address, sc_input_data,
// joined by "\n" with no trailing newline. commodity and network are ASCII
// lowercased; commodity_amount keeps string values verbatim and renders
// numbers as plain decimals. Fields outside the required set do not
// contribute.
package canonical
