// Command libmsgbox exports ShowMessageBox over the C ABI for hosts that
// load it dynamically:
//
//	go build -buildmode=c-shared -o libmsgbox.so ./cmd/libmsgbox
//
//	void show_message_box(const char *message, const char *title);
//
// NULL arguments are treated as empty strings.
package main

import "C"

import "msgbox/internal/msgbox"

//export show_message_box
func show_message_box(message, title *C.char) {
	msgbox.ShowMessageBox(C.GoString(message), C.GoString(title))
}

func main() {}
