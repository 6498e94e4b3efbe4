// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listing

import "strings"

// wordsPerMinute is the assumed reading speed for the estimate shown next
// to each post.
const wordsPerMinute = 200

// ReadingMinutes estimates reading time for a markdown body: word count
// divided by the reading speed, rounded up. Non-empty bodies report at
// least one minute; an empty body reports zero.
func ReadingMinutes(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
