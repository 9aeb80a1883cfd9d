// Package placeholder recognizes and parses placeholder rows in the tag
// tree: titles such as "10个子主题，例如：问候；介绍；告别" that stand in for
// children nobody has enumerated yet.
//
// Detection and parsing share one pattern, so a title is detected exactly
// when it can be parsed.
package placeholder
