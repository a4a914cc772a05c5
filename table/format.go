package table

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Format writes t as "[v0, v1, ..., v254, vLast]\n", where vLast is chosen
// by tail.
func Format(w io.Writer, t Table, tail TailIndex) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 8)

	bw.WriteByte('[')
	for i := 0; i < Size-1; i++ {
		buf = strconv.AppendInt(buf[:0], int64(t[i]), 10)
		bw.Write(buf)
		bw.WriteString(", ")
	}
	buf = strconv.AppendInt(buf[:0], int64(t[tail.Index()]), 10)
	bw.Write(buf)
	bw.WriteString("]\n")

	return bw.Flush()
}

func (t Table) String() string {
	var sb strings.Builder
	// strings.Builder writes never fail
	_ = Format(&sb, t, TAIL_FIXED)
	return sb.String()
}
