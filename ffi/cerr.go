package main

/*
#include <stdlib.h>
#include <string.h>

// Last error message for the calling thread. Each C thread that calls
// into the library sees only its own error state.
static __thread char *aicred_err_msg = NULL;

static char *aicred_strdup(const char *s) {
	size_t n = strlen(s) + 1;
	char *out = malloc(n);
	if (out != NULL) {
		memcpy(out, s, n);
	}
	return out;
}

void aicredSetErr(const char *msg) {
	if (aicred_err_msg != NULL) {
		free(aicred_err_msg);
		aicred_err_msg = NULL;
	}
	if (msg != NULL) {
		aicred_err_msg = aicred_strdup(msg);
	}
}

const char *aicredErrPtr(void) {
	return aicred_err_msg;
}
*/
import "C"
