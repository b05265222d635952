package main

import _ "example.com/PayloadError/shapes"

func main() {}
